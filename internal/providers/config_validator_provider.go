package providers

import (
	"errors"
	"formpick/internal/structures"
	"time"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	v.StopOnError = true
	if !v.Validate() {
		return v.Errors
	}

	studio := cv.conf.Studio
	if studio.Timezone != "" {
		if _, err := time.LoadLocation(studio.Timezone); err != nil {
			return err
		}
	}
	if studio.RecentLogLimit < 0 {
		return errors.New("studio.recentLogLimit must not be negative")
	}
	if studio.DefaultDuration < 0 {
		return errors.New("studio.defaultDuration must not be negative")
	}
	return nil
}
