package sitepref

import "net/http"

// Store persists a site preference between requests.
//
// Load never fails: a missing, malformed or unreadable value reports
// ok == false. Save returns an error only when the backing storage fails.
type Store interface {
	Load(r *http.Request) (p Preference, ok bool)
	Save(w http.ResponseWriter, r *http.Request, p Preference) error
}
