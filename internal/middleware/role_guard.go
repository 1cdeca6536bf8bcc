package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleを確認します。

// ADMINだけ許可（レポートなど）
func AdminRoleGuard() echo.MiddlewareFunc {
	return requireRole("ADMIN")
}

// 管理画面はADMINとSTAFFを許可
func StaffRoleGuard() echo.MiddlewareFunc {
	return requireRole("ADMIN", "STAFF")
}

func requireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			for _, a := range allowed {
				if role == a {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
		}
	}
}
