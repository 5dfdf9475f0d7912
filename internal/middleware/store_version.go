package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// StoreVersionHeader carries the store version after the request was handled.
const StoreVersionHeader = "X-Store-Version"

// VersionSource is implemented by services.CommerceStore.
type VersionSource interface {
	Version() uint64
}

// StoreVersion stamps every response with the store version so clients can
// tell whether their cached cart, wishlist or product list is stale.
func StoreVersion(src VersionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(StoreVersionHeader, strconv.FormatUint(src.Version(), 10))
		return err
	}
}
