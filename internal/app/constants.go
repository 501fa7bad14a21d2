package app

const (
	// RemoteURL is the hosted syaOS application the primary window loads at
	// startup. Always loading the hosted app keeps the page on a stable
	// origin.
	RemoteURL = "https://sya-os.vercel.app"
)
