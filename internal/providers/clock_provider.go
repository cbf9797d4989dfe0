package providers

import (
	"fmt"
	"formpick/internal/structures"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Clock is the studio's notion of "now". Dates are computed in the studio
// timezone so that "today" matches the front desk.
type Clock interface {
	Now() time.Time
	Today() string
}

type ZonedClock struct {
	loc *time.Location
}

func (c *ZonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *ZonedClock) Today() string {
	return c.Now().Format(DateLayout)
}

func NewClockProvider(conf *structures.Config) (Clock, error) {
	loc := time.Local
	if conf.Studio.Timezone != "" {
		l, err := time.LoadLocation(conf.Studio.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unable to load timezone %q: %w", conf.Studio.Timezone, err)
		}
		loc = l
	}
	return &ZonedClock{loc: loc}, nil
}

// IDGenerator issues record identifiers such as "ev_1b4e28ba-...".
type IDGenerator interface {
	NewID(prefix string) string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "_" + uuid.NewString()
}

func NewIDProvider() IDGenerator {
	return uuidGenerator{}
}
