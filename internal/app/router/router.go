// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "lq45_backend/internal/feature/auth/transport/handler"
	comparehandler "lq45_backend/internal/feature/compare/transport/handler"
	crossoverhandler "lq45_backend/internal/feature/crossover/transport/handler"
	rawdatahandler "lq45_backend/internal/feature/rawdata/transport/handler"
	symbolhandler "lq45_backend/internal/feature/symbollist/transport/handler"
	"lq45_backend/internal/platform/http/handler"
	jwtmw "lq45_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with the public and JWT-protected routes.
func NewRouter(
	auth *authhandler.AuthHandler,
	compare *comparehandler.CompareHandler,
	crossover *crossoverhandler.CrossoverHandler,
	rawdata *rawdatahandler.RawdataHandler,
	symbol *symbolhandler.SymbolHandler,
) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Authenticated routes: the dashboard API requires a bearer JWT.
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/compare", compare.GetCompareHandler)
		protected.GET("/crossover/:symbol", crossover.GetCrossoverHandler)
		protected.GET("/raw/:symbol", rawdata.GetRawHandler)
		protected.GET("/symbols", symbol.List)
	}

	return r
}
