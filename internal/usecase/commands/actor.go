package commands

import (
	"slices"
	"strings"

	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/pkg/jwt"
)

var ErrForbidden = errs.Mark(errs.New("actor may not modify this shop"), errs.ErrShopForbidden)

// Actor is the authenticated seller issuing a command.
type Actor struct {
	Subject string
	Shops   []string
}

func (a Actor) CoversAll() bool {
	return slices.Contains(a.Shops, jwt.AllShops)
}

func (a Actor) CoversShop(shop string) bool {
	return a.CoversAll() || slices.Contains(a.Shops, strings.TrimSpace(shop))
}

func (a Actor) authorize(shops ...string) error {
	for _, shop := range shops {
		if !a.CoversShop(shop) {
			return ErrForbidden
		}
	}
	return nil
}

func (a Actor) authorizeAll() error {
	if !a.CoversAll() {
		return ErrForbidden
	}
	return nil
}
