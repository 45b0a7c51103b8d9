package astro

import (
	"github.com/astrowheel/astrowheel/pkg/errors"
)

// ValidateSubject checks that a subject can be laid out on a wheel:
// a usable name, twelve house cusps, and finite positions throughout.
func ValidateSubject(s *Subject) error {
	if err := errors.ValidateSubjectName(s.Name); err != nil {
		return err
	}
	if err := errors.ValidateLatitude(s.Lat); err != nil {
		return err
	}
	if err := errors.ValidateLongitude(s.Lng); err != nil {
		return err
	}

	if len(s.Houses) != 12 {
		return errors.New(errors.ErrCodeInvalidInput, "subject %s has %d house cusps, need 12", s.Name, len(s.Houses))
	}

	for _, p := range s.Points {
		if err := errors.ValidateDegree(p.Name, "abs_pos", p.AbsPos); err != nil {
			return err
		}
		if err := errors.ValidateDegree(p.Name, "position", p.Position); err != nil {
			return err
		}
	}

	for _, h := range s.Houses {
		if h.Number < 1 || h.Number > 12 {
			return errors.New(errors.ErrCodeInvalidInput, "house number %d outside [1, 12]", h.Number)
		}
		if err := errors.ValidateDegree(HouseName(h.Number), "abs_pos", h.AbsPos); err != nil {
			return err
		}
	}

	return nil
}

// ValidateChart checks mode and subject consistency before layout.
func ValidateChart(c *Chart) error {
	if !ValidModes[c.Mode] {
		return errors.New(errors.ErrCodeInvalidMode, "unknown chart mode %q", c.Mode)
	}

	if err := ValidateSubject(&c.First); err != nil {
		return err
	}

	if c.Mode.RequiresSecondSubject() {
		if c.Second == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s charts need a second subject", c.Mode)
		}
		if err := ValidateSubject(c.Second); err != nil {
			return err
		}
	}

	for _, a := range c.Aspects {
		if err := errors.ValidateDegree(a.P1Name, "p1_abs_pos", a.P1AbsPos); err != nil {
			return err
		}
		if err := errors.ValidateDegree(a.P2Name, "p2_abs_pos", a.P2AbsPos); err != nil {
			return err
		}
	}

	return nil
}
