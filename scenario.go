// Package optchain walks a fixed set of null-safety scenarios over a
// Computer → Soundcard → USB chain, contrasting manual nil checks with the
// optional container.
package optchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/optchain/optchain/hardware"
	"github.com/optchain/optchain/optional"
)

// Outcome is what a single scenario produced: a rendered value, the empty
// path, or a raised absence error. Exactly one of the three applies.
type Outcome struct {
	Value  string
	Absent bool
	Err    error
}

// Scenario is one demonstration step. Run executes it and reports
// the outcome.
type Scenario struct {
	Name string
	Doc  string
	Run  func() Outcome
}

func presentOutcome(format string, args ...any) Outcome {
	return Outcome{Value: fmt.Sprintf(format, args...)}
}

func absentOutcome() Outcome {
	return Outcome{Absent: true}
}

// Scenarios returns the demonstration set in its fixed order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "manual-checks",
			Doc:  "walk the chain with nested nil checks, the style the container replaces",
			Run:  runManualChecks,
		},
		{
			Name: "empty",
			Doc:  "construct an optional holding no value",
			Run:  runEmpty,
		},
		{
			Name: "of",
			Doc:  "wrap a soundcard that is known to exist",
			Run:  runOf,
		},
		{
			Name: "of-nil",
			Doc:  "wrap a nil soundcard with Of, which raises ErrNilValue",
			Run:  runOfNil,
		},
		{
			Name: "ofnullable",
			Doc:  "wrap a soundcard that may be nil, taking the present path",
			Run:  runOfNullable,
		},
		{
			Name: "ofnullable-missing",
			Doc:  "wrap a nil soundcard with OfNullable, yielding an empty optional",
			Run:  runOfNullableMissing,
		},
		{
			Name: "ifpresent",
			Doc:  "run an action only when a value is present",
			Run:  runIfPresent,
		},
		{
			Name: "orelse",
			Doc:  "fall back to a default soundcard when none is attached",
			Run:  runOrElse,
		},
		{
			Name: "orelsethrow",
			Doc:  "raise a caller-supplied error when the USB is missing",
			Run:  runOrElseThrow,
		},
		{
			Name: "filter",
			Doc:  "keep the USB only when its version is 3.0",
			Run:  runFilter,
		},
		{
			Name: "filter-mismatch",
			Doc:  "filter a 2.0 USB against version 3.0, yielding an empty optional",
			Run:  runFilterMismatch,
		},
		{
			Name: "safe-navigation",
			Doc:  "read the USB version through the whole chain without a single nil check",
			Run:  runSafeNavigation,
		},
	}
}

// FindScenarios returns the scenarios matching the given names, in
// demonstration order. With no names it returns the full set.
func FindScenarios(names []string) ([]Scenario, error) {
	all := Scenarios()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.ToLower(name)] = true
	}

	var matched []Scenario
	for _, sc := range all {
		if wanted[sc.Name] {
			matched = append(matched, sc)
			delete(wanted, sc.Name)
		}
	}

	if len(wanted) != 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown scenario(s): %s", strings.Join(unknown, ", "))
	}

	return matched, nil
}

// newComputer builds the full demonstration chain: a computer with a
// soundcard that carries a USB of the given version.
func newComputer(usbVersion string) *hardware.Computer {
	usb := &hardware.USB{}
	usb.SetVersion(&usbVersion)

	soundcard := hardware.NewSoundcard("My Soundcard")
	soundcard.SetUSB(usb)

	computer := &hardware.Computer{}
	computer.SetSoundcard(soundcard)

	return computer
}

func runManualChecks() Outcome {
	computer := &hardware.Computer{}

	// the "before" picture: every link guarded by hand
	if computer != nil {
		soundcard := computer.Soundcard()
		if soundcard != nil {
			usb := soundcard.USB()
			if usb != nil {
				version := usb.Version()
				if version != nil {
					return presentOutcome("USB version %s", *version)
				}
			}
		}
	}

	return absentOutcome()
}

func runEmpty() Outcome {
	emptySoundcard := optional.Empty[hardware.Soundcard]()

	if emptySoundcard.IsPresent() {
		return presentOutcome("unexpected soundcard")
	}

	return absentOutcome()
}

func runOf() Outcome {
	soundcard, err := optional.Of(hardware.NewSoundcard("My Soundcard"))
	if err != nil {
		return Outcome{Err: err}
	}

	card, err := soundcard.Get()
	if err != nil {
		return Outcome{Err: err}
	}

	return presentOutcome("%s", card.Description())
}

func runOfNil() Outcome {
	var missing *hardware.Soundcard

	if _, err := optional.Of(missing); err != nil {
		return Outcome{Err: err}
	}

	return presentOutcome("Of accepted a nil soundcard")
}

func runOfNullable() Outcome {
	soundcard := optional.OfNullable(hardware.NewSoundcard("My Soundcard"))

	card, err := soundcard.Get()
	if err != nil {
		return Outcome{Err: err}
	}

	return presentOutcome("%s", card.Description())
}

func runOfNullableMissing() Outcome {
	computer := &hardware.Computer{}

	soundcard := optional.OfNullable(computer.Soundcard())
	if soundcard.IsPresent() {
		return presentOutcome("unexpected soundcard")
	}

	return absentOutcome()
}

func runIfPresent() Outcome {
	soundcard := optional.OfNullable(hardware.NewSoundcard("My Soundcard"))

	var described string
	soundcard.IfPresent(func(card hardware.Soundcard) {
		described = card.Description()
	})

	if described == "" {
		return absentOutcome()
	}

	return presentOutcome("%s", described)
}

func runOrElse() Outcome {
	computer := &hardware.Computer{}

	card := optional.OfNullable(computer.Soundcard()).
		OrElse(*hardware.NewSoundcard("Default soundcard"))

	return presentOutcome("%s", card.Description())
}

func runOrElseThrow() Outcome {
	soundcard := hardware.NewSoundcard("My Soundcard")

	_, err := optional.OfNullable(soundcard.USB()).OrElseThrow(func() error {
		return errors.New("soundcard has no usb attached")
	})
	if err != nil {
		return Outcome{Err: err}
	}

	return presentOutcome("usb attached")
}

func runFilter() Outcome {
	computer := newComputer("3.0")
	usb := computer.Soundcard().USB()

	matched := optional.OfNullable(usb).Filter(func(u hardware.USB) bool {
		version := u.Version()
		return version != nil && strings.EqualFold(*version, "3.0")
	})

	if !matched.IsPresent() {
		return absentOutcome()
	}

	return presentOutcome("USB 3.0 found")
}

func runFilterMismatch() Outcome {
	computer := newComputer("2.0")
	usb := computer.Soundcard().USB()

	matched := optional.OfNullable(usb).Filter(func(u hardware.USB) bool {
		version := u.Version()
		return version != nil && strings.EqualFold(*version, "3.0")
	})

	if matched.IsPresent() {
		return presentOutcome("unexpected USB 3.0")
	}

	return absentOutcome()
}

func runSafeNavigation() Outcome {
	computer := newComputer("3.0")

	soundcard := optional.OfNullable(computer.Soundcard())
	usb := optional.FlatMap(soundcard, func(card hardware.Soundcard) optional.Optional[hardware.USB] {
		return optional.OfNullable(card.USB())
	})
	version := optional.FlatMap(usb, func(u hardware.USB) optional.Optional[string] {
		return optional.OfNullable(u.Version())
	})

	return presentOutcome("USB version %s", version.OrElse("UNKNOWN"))
}
