package smarthome

// Category classifies a request by the namespace it was sent on.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryDiscovery
	CategoryControl
	CategorySystem
)

func (c Category) String() string {
	switch c {
	case CategoryDiscovery:
		return "Discovery"
	case CategoryControl:
		return "Control"
	case CategorySystem:
		return "System"
	default:
		return "Unknown"
	}
}

// Namespace returns the header namespace of the category, or "" for
// CategoryUnknown.
func (c Category) Namespace() string {
	switch c {
	case CategoryDiscovery:
		return NamespaceDiscovery
	case CategoryControl:
		return NamespaceControl
	case CategorySystem:
		return NamespaceSystem
	default:
		return ""
	}
}

// CategoryOf maps a header namespace to its category.
func CategoryOf(namespace string) Category {
	switch namespace {
	case NamespaceDiscovery:
		return CategoryDiscovery
	case NamespaceControl:
		return CategoryControl
	case NamespaceSystem:
		return CategorySystem
	default:
		return CategoryUnknown
	}
}

// RequestCategory maps a request name to the category it belongs to.
func RequestCategory(name string) Category {
	switch {
	case DiscoveryRequests.Contains(name):
		return CategoryDiscovery
	case ControlRequests.Contains(name):
		return CategoryControl
	case SystemRequests.Contains(name):
		return CategorySystem
	default:
		return CategoryUnknown
	}
}
