package views

import (
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

// SharedView shows an entry decoded from a share token. It never touches
// the store.
type SharedView struct {
	payload share.Payload
	err     error
}

func NewSharedView(token string) *SharedView {
	p, err := share.Decode(token)
	return &SharedView{payload: p, err: err}
}

// Invalid reports that the token could not be decoded.
func (v *SharedView) Invalid() bool { return v.err != nil }

func (v *SharedView) Err() error { return v.err }

func (v *SharedView) Payload() share.Payload { return v.payload }

// Text is the plain-text card, or "" when the token is invalid.
func (v *SharedView) Text() string {
	if v.Invalid() {
		return ""
	}
	return share.Text(v.payload)
}
