package sqlstore

import "github.com/jhoicas/mercado-api/internal/domain/repository"

// NewStores construye los stores de todas las entidades sobre la misma conexión (o transacción).
func NewStores(db DBTX, obs Observer) repository.Stores {
	return repository.Stores{
		Category:          MustStore(db, CategorySchema, obs),
		Consumer:          MustStore(db, ConsumerSchema, obs),
		Producer:          MustStore(db, ProducerSchema, obs),
		Product:           MustStore(db, ProductSchema, obs),
		ProducerProduct:   MustStore(db, ProducerProductSchema, obs),
		Favorite:          MustStore(db, FavoriteSchema, obs),
		Order:             MustStore(db, OrderSchema, obs),
		Review:            MustStore(db, ReviewSchema, obs),
		Form:              MustStore(db, FormSchema, obs),
		Module:            MustStore(db, ModuleSchema, obs),
		Permission:        MustStore(db, PermissionSchema, obs),
		Persona:           MustStore(db, PersonaSchema, obs),
		User:              MustStore(db, UserSchema, obs),
		Rol:               MustStore(db, RolSchema, obs),
		RolUser:           MustStore(db, RolUserSchema, obs),
		FormModule:        MustStore(db, FormModuleSchema, obs),
		RolFormPermission: MustStore(db, RolFormPermissionSchema, obs),
	}
}
