package models

// User is an operator allowed to call the HTTP API. Configs lists the AC
// configs the operator may replay; empty means every config.
type User struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Configs      []string `json:"configs,omitempty"`
}

// MaySend reports whether u may replay codes of the named config.
func (u User) MaySend(config string) bool {
	if len(u.Configs) == 0 {
		return true
	}
	for _, c := range u.Configs {
		if c == config {
			return true
		}
	}
	return false
}
