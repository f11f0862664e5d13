package repository

import "github.com/jhoicas/mercado-api/internal/domain/entity"

// Stores agrupa los puertos de persistencia de todas las entidades.
type Stores struct {
	Category          Store[entity.Category]
	Consumer          Store[entity.Consumer]
	Producer          Store[entity.Producer]
	Product           Store[entity.Product]
	ProducerProduct   Store[entity.ProducerProduct]
	Favorite          Store[entity.Favorite]
	Order             Store[entity.Order]
	Review            Store[entity.Review]
	Form              Store[entity.Form]
	Module            Store[entity.Module]
	Permission        Store[entity.Permission]
	Persona           Store[entity.Persona]
	User              Store[entity.User]
	Rol               Store[entity.Rol]
	RolUser           Store[entity.RolUser]
	FormModule        Store[entity.FormModule]
	RolFormPermission Store[entity.RolFormPermission]
}
