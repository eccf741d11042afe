package device

// Class is the coarse device category a request originates from.
type Class int

const (
	// Normal identifies desktops, laptops and anything not recognized as mobile or tablet.
	Normal Class = iota

	// Mobile identifies smartphones and feature phones.
	Mobile

	// Tablet identifies tablet devices (iPad, Android tablets, Kindle, etc.).
	Tablet
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "normal"
	}
}

// ParseClass converts a class name into a Class. Matching is case-sensitive
// on the lower-case names returned by String.
func ParseClass(s string) (Class, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "mobile":
		return Mobile, nil
	case "tablet":
		return Tablet, nil
	}
	return Normal, ErrUnknownClass
}

// Platform is the operating system family of a mobile or tablet device.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformIOS
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	default:
		return "unknown"
	}
}

// Device is the classification result for a single request.
type Device struct {
	Class    Class
	Platform Platform
}

// IsNormal returns true if the device is neither mobile nor tablet.
func (d Device) IsNormal() bool { return d.Class == Normal }

// IsMobile returns true if the device is a phone.
func (d Device) IsMobile() bool { return d.Class == Mobile }

// IsTablet returns true if the device is a tablet.
func (d Device) IsTablet() bool { return d.Class == Tablet }

func (d Device) String() string {
	if d.Platform == PlatformUnknown {
		return d.Class.String()
	}
	return d.Class.String() + "/" + d.Platform.String()
}
