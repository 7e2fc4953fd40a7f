package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// NowIn é o único ponto onde a API lê o relógio; o engine recebe
// esse instante como entrada
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
