// Package hardware models a small Computer → Soundcard → USB chain in which
// every link may be missing. It exists to give the optional package a
// realistic nested graph to navigate.
package hardware

// Computer owns an optional Soundcard.
type Computer struct {
	soundcard *Soundcard
}

// Soundcard returns the attached soundcard, which may be nil.
func (c *Computer) Soundcard() *Soundcard {
	return c.soundcard
}

// SetSoundcard attaches or detaches (nil) the soundcard.
func (c *Computer) SetSoundcard(s *Soundcard) {
	c.soundcard = s
}

// Soundcard has a fixed description and owns an optional USB.
type Soundcard struct {
	description string
	usb         *USB
}

// NewSoundcard creates a Soundcard with the given description.
func NewSoundcard(description string) *Soundcard {
	return &Soundcard{description: description}
}

// Description returns the description set at construction.
func (s *Soundcard) Description() string {
	return s.description
}

// USB returns the attached USB, which may be nil.
func (s *Soundcard) USB() *USB {
	return s.usb
}

// SetUSB attaches or detaches (nil) the USB.
func (s *Soundcard) SetUSB(u *USB) {
	s.usb = u
}

// USB carries an optional version string.
type USB struct {
	version *string
}

// Version returns the version string, which may be nil when unset.
func (u *USB) Version() *string {
	return u.version
}

// SetVersion sets or clears (nil) the version string.
func (u *USB) SetVersion(version *string) {
	u.version = version
}
