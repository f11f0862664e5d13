package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/infrastructure/metrics"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// Pinger verifica la conexión a la base de datos (*sql.DB lo cumple).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog *usecase.Catalog
	Log     *logger.Logger
	Metrics *metrics.Metrics // opcional
	DB      Pinger           // opcional; /health responde 503 si el ping falla
	AppName string
}

// NewApp crea la aplicación Fiber con el manejador de errores y los middlewares comunes.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Log),
	})

	var obs RequestObserver
	if deps.Metrics != nil {
		obs = deps.Metrics
	}
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log.Named("http"), obs))
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")
	cat := deps.Catalog

	// Mercado
	mount[dto.Category](api, "category", cat.Category)
	mount[dto.Consumer](api, "consumer", cat.Consumer)
	mount[dto.Producer](api, "producer", cat.Producer)
	mount[dto.Product](api, "product", cat.Product)
	mount[dto.ProducerProduct](api, "producerproduct", cat.ProducerProduct)
	mount[dto.Favorite](api, "favorite", cat.Favorite)
	mount[dto.Order](api, "order", cat.Order)
	mount[dto.Review](api, "review", cat.Review, "consumerId", "productId")

	// Seguridad y acceso
	mount[dto.Form](api, "form", cat.Form)
	mount[dto.Module](api, "module", cat.Module)
	mount[dto.Permission](api, "permission", cat.Permission)
	mount[dto.Persona](api, "persona", cat.Persona)
	mount[dto.User](api, "user", cat.User)
	mount[dto.Rol](api, "rol", cat.Rol)
	mount[dto.RolUser](api, "roluser", cat.RolUser)
	mount[dto.FormModule](api, "formmodule", cat.FormModule)
	mount[dto.RolFormPermission](api, "rolformpermission", cat.RolFormPermission)
}

func mount[D any, P Keyed[D]](api fiber.Router, name string, svc EntityService[D], params ...string) {
	NewEntityHandler[D, P](svc, params...).Mount(api.Group("/" + name))
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.DB != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.DB.PingContext(ctx); err != nil {
				deps.Log.Error().Err(err).Msg("health: base de datos no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": deps.AppName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}
