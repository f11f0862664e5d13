package usecase

import (
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// Catalog agrupa los servicios de todas las entidades.
type Catalog struct {
	Category          *EntityService[dto.Category, entity.Category]
	Consumer          *EntityService[dto.Consumer, entity.Consumer]
	Producer          *EntityService[dto.Producer, entity.Producer]
	Product           *EntityService[dto.Product, entity.Product]
	ProducerProduct   *EntityService[dto.ProducerProduct, entity.ProducerProduct]
	Favorite          *EntityService[dto.Favorite, entity.Favorite]
	Order             *EntityService[dto.Order, entity.Order]
	Review            *EntityService[dto.Review, entity.Review]
	Form              *EntityService[dto.Form, entity.Form]
	Module            *EntityService[dto.Module, entity.Module]
	Permission        *EntityService[dto.Permission, entity.Permission]
	Persona           *EntityService[dto.Persona, entity.Persona]
	User              *EntityService[dto.User, entity.User]
	Rol               *EntityService[dto.Rol, entity.Rol]
	RolUser           *EntityService[dto.RolUser, entity.RolUser]
	FormModule        *EntityService[dto.FormModule, entity.FormModule]
	RolFormPermission *EntityService[dto.RolFormPermission, entity.RolFormPermission]
}

// NewCatalog construye los servicios sobre los stores dados. obs puede ser nil.
func NewCatalog(s repository.Stores, val Validator, obs Observer, log *logger.Logger) *Catalog {
	return &Catalog{
		Category:          NewEntityService(s.Category, categoryDef, val, obs, log),
		Consumer:          NewEntityService(s.Consumer, consumerDef, val, obs, log),
		Producer:          NewEntityService(s.Producer, producerDef, val, obs, log),
		Product:           NewEntityService(s.Product, productDef, val, obs, log),
		ProducerProduct:   NewEntityService(s.ProducerProduct, producerProductDef, val, obs, log),
		Favorite:          NewEntityService(s.Favorite, favoriteDef, val, obs, log),
		Order:             NewEntityService(s.Order, orderDef, val, obs, log),
		Review:            NewEntityService(s.Review, reviewDef, val, obs, log),
		Form:              NewEntityService(s.Form, formDef, val, obs, log),
		Module:            NewEntityService(s.Module, moduleDef, val, obs, log),
		Permission:        NewEntityService(s.Permission, permissionDef, val, obs, log),
		Persona:           NewEntityService(s.Persona, personaDef, val, obs, log),
		User:              NewEntityService(s.User, userDef, val, obs, log),
		Rol:               NewEntityService(s.Rol, rolDef, val, obs, log),
		RolUser:           NewEntityService(s.RolUser, rolUserDef, val, obs, log),
		FormModule:        NewEntityService(s.FormModule, formModuleDef, val, obs, log),
		RolFormPermission: NewEntityService(s.RolFormPermission, rolFormPermissionDef, val, obs, log),
	}
}
