package services

import (
	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

// ClubKey canonicalizes a club name into the slug used for uniqueness
// indexes, so spelling/casing variants of the same booth name cannot hand
// out a second award. Club names are frequently Thai, so the name is NFC
// normalized before slugging to keep the key stable across input methods.
func ClubKey(clubName string) string {
	return slug.Make(norm.NFC.String(clubName))
}
