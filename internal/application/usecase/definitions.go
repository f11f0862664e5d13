package usecase

import (
	"time"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// ─── Mercado ─────────────────────────────────────────────────────────────────

var categoryDef = Definition[dto.Category, entity.Category]{
	Entity: "Category",
	ToRecord: func(in *dto.Category) *entity.Category {
		return &entity.Category{Name: in.Name}
	},
	ToDTO: func(r *entity.Category) dto.Category {
		return dto.Category{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.Category, src *dto.Category) { dst.Name = src.Name },
	Stamp: func(r *entity.Category, now time.Time) { r.CreatedAt = now },
}

var consumerDef = Definition[dto.Consumer, entity.Consumer]{
	Entity: "Consumer",
	ToRecord: func(in *dto.Consumer) *entity.Consumer {
		return &entity.Consumer{Active: in.Active}
	},
	ToDTO: func(r *entity.Consumer) dto.Consumer {
		return dto.Consumer{Identity: dto.Identity{ID: r.ID}, Active: r.Active, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.Consumer, src *dto.Consumer) { dst.Active = src.Active },
	Stamp: func(r *entity.Consumer, now time.Time) { r.CreatedAt = now },
}

var producerDef = Definition[dto.Producer, entity.Producer]{
	Entity: "Producer",
	ToRecord: func(in *dto.Producer) *entity.Producer {
		return &entity.Producer{Address: in.Address}
	},
	ToDTO: func(r *entity.Producer) dto.Producer {
		return dto.Producer{Identity: dto.Identity{ID: r.ID}, Address: r.Address, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.Producer, src *dto.Producer) { dst.Address = src.Address },
	Stamp: func(r *entity.Producer, now time.Time) { r.CreatedAt = now },
}

var productDef = Definition[dto.Product, entity.Product]{
	Entity: "Product",
	ToRecord: func(in *dto.Product) *entity.Product {
		return &entity.Product{CategoryID: in.CategoryID, FavoriteID: in.FavoriteID}
	},
	ToDTO: func(r *entity.Product) dto.Product {
		return dto.Product{
			Identity:   dto.Identity{ID: r.ID},
			CategoryID: r.CategoryID,
			FavoriteID: r.FavoriteID,
			Audit:      dto.Stamp(r.CreatedAt),
		}
	},
	Merge: func(dst *entity.Product, src *dto.Product) {
		dst.CategoryID = src.CategoryID
		dst.FavoriteID = src.FavoriteID
	},
	Stamp: func(r *entity.Product, now time.Time) { r.CreatedAt = now },
}

var producerProductDef = Definition[dto.ProducerProduct, entity.ProducerProduct]{
	Entity: "ProducerProduct",
	ToRecord: func(in *dto.ProducerProduct) *entity.ProducerProduct {
		r := &entity.ProducerProduct{}
		mergeProducerProduct(r, in)
		return r
	},
	ToDTO: func(r *entity.ProducerProduct) dto.ProducerProduct {
		return dto.ProducerProduct{
			Identity:     dto.Identity{ID: r.ID},
			ProducerID:   r.ProducerID,
			ProductID:    r.ProductID,
			Name:         r.Name,
			Description:  r.Description,
			Price:        r.Price,
			Production:   r.Production,
			Availability: r.Availability,
			ImageURL:     r.ImageURL,
			Audit:        dto.Stamp(r.CreatedAt),
		}
	},
	Merge: mergeProducerProduct,
	Stamp: func(r *entity.ProducerProduct, now time.Time) { r.CreatedAt = now },
}

func mergeProducerProduct(dst *entity.ProducerProduct, src *dto.ProducerProduct) {
	dst.ProducerID = src.ProducerID
	dst.ProductID = src.ProductID
	dst.Name = src.Name
	dst.Description = src.Description
	dst.Price = src.Price
	dst.Production = src.Production
	dst.Availability = src.Availability
	dst.ImageURL = src.ImageURL
}

// Favorite: DateAdded la envía el cliente o se asigna al crear; no cambia en Update.
var favoriteDef = Definition[dto.Favorite, entity.Favorite]{
	Entity: "Favorite",
	ToRecord: func(in *dto.Favorite) *entity.Favorite {
		r := &entity.Favorite{ConsumerID: in.ConsumerID, ProducerID: in.ProducerID, ProductID: in.ProductID}
		if in.DateAdded != nil {
			r.DateAdded = in.DateAdded.UTC()
		}
		return r
	},
	ToDTO: func(r *entity.Favorite) dto.Favorite {
		out := dto.Favorite{
			Identity:   dto.Identity{ID: r.ID},
			ConsumerID: r.ConsumerID,
			ProducerID: r.ProducerID,
			ProductID:  r.ProductID,
			Audit:      dto.Stamp(r.CreatedAt),
		}
		if !r.DateAdded.IsZero() {
			added := r.DateAdded
			out.DateAdded = &added
		}
		return out
	},
	Merge: func(dst *entity.Favorite, src *dto.Favorite) {
		dst.ConsumerID = src.ConsumerID
		dst.ProducerID = src.ProducerID
		dst.ProductID = src.ProductID
	},
	Stamp: func(r *entity.Favorite, now time.Time) {
		r.CreatedAt = now
		if r.DateAdded.IsZero() {
			r.DateAdded = now
		}
	},
}

var orderDef = Definition[dto.Order, entity.Order]{
	Entity: "Order",
	ToRecord: func(in *dto.Order) *entity.Order {
		return &entity.Order{ConsumerID: in.ConsumerID, Status: in.Status, Note: in.Note}
	},
	ToDTO: func(r *entity.Order) dto.Order {
		return dto.Order{
			Identity:   dto.Identity{ID: r.ID},
			ConsumerID: r.ConsumerID,
			Status:     r.Status,
			Note:       r.Note,
			Audit:      dto.Stamp(r.CreatedAt),
		}
	},
	Merge: func(dst *entity.Order, src *dto.Order) {
		dst.ConsumerID = src.ConsumerID
		dst.Status = src.Status
		dst.Note = src.Note
	},
	Stamp: func(r *entity.Order, now time.Time) { r.CreatedAt = now },
}

// Review: la clave (consumerId, productId) viene en el DTO y nunca se modifica.
var reviewDef = Definition[dto.Review, entity.Review]{
	Entity: "Review",
	ToRecord: func(in *dto.Review) *entity.Review {
		return &entity.Review{ConsumerID: in.ConsumerID, ProductID: in.ProductID, Rating: in.Rating, Comment: in.Comment}
	},
	ToDTO: func(r *entity.Review) dto.Review {
		return dto.Review{
			ConsumerID: r.ConsumerID,
			ProductID:  r.ProductID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Audit:      dto.Stamp(r.CreatedAt),
		}
	},
	Merge: func(dst *entity.Review, src *dto.Review) {
		dst.Rating = src.Rating
		dst.Comment = src.Comment
	},
	Stamp: func(r *entity.Review, now time.Time) { r.CreatedAt = now },
}

// ─── Seguridad y acceso ──────────────────────────────────────────────────────

var formDef = Definition[dto.Form, entity.Form]{
	Entity: "Form",
	ToRecord: func(in *dto.Form) *entity.Form {
		return &entity.Form{Name: in.Name, Description: in.Description, URL: in.URL}
	},
	ToDTO: func(r *entity.Form) dto.Form {
		return dto.Form{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Description: r.Description, URL: r.URL}
	},
	Merge: func(dst *entity.Form, src *dto.Form) {
		dst.Name = src.Name
		dst.Description = src.Description
		dst.URL = src.URL
	},
}

var moduleDef = Definition[dto.Module, entity.Module]{
	Entity: "Module",
	ToRecord: func(in *dto.Module) *entity.Module {
		return &entity.Module{Name: in.Name, Description: in.Description}
	},
	ToDTO: func(r *entity.Module) dto.Module {
		return dto.Module{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Description: r.Description}
	},
	Merge: func(dst *entity.Module, src *dto.Module) {
		dst.Name = src.Name
		dst.Description = src.Description
	},
}

var permissionDef = Definition[dto.Permission, entity.Permission]{
	Entity: "Permission",
	ToRecord: func(in *dto.Permission) *entity.Permission {
		return &entity.Permission{Name: in.Name, Description: in.Description}
	},
	ToDTO: func(r *entity.Permission) dto.Permission {
		return dto.Permission{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Description: r.Description}
	},
	Merge: func(dst *entity.Permission, src *dto.Permission) {
		dst.Name = src.Name
		dst.Description = src.Description
	},
}

var personaDef = Definition[dto.Persona, entity.Persona]{
	Entity: "Persona",
	ToRecord: func(in *dto.Persona) *entity.Persona {
		return &entity.Persona{Name: in.Name, Email: in.Email, PhoneNumber: in.PhoneNumber}
	},
	ToDTO: func(r *entity.Persona) dto.Persona {
		return dto.Persona{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Email: r.Email, PhoneNumber: r.PhoneNumber}
	},
	Merge: func(dst *entity.Persona, src *dto.Persona) {
		dst.Name = src.Name
		dst.Email = src.Email
		dst.PhoneNumber = src.PhoneNumber
	},
}

var userDef = Definition[dto.User, entity.User]{
	Entity: "User",
	ToRecord: func(in *dto.User) *entity.User {
		return &entity.User{UserName: in.UserName, ProfilePhotoURL: in.ProfilePhotoURL, Active: in.Active}
	},
	ToDTO: func(r *entity.User) dto.User {
		return dto.User{
			Identity:        dto.Identity{ID: r.ID},
			UserName:        r.UserName,
			ProfilePhotoURL: r.ProfilePhotoURL,
			Active:          r.Active,
			Audit:           dto.Stamp(r.CreatedAt),
		}
	},
	Merge: func(dst *entity.User, src *dto.User) {
		dst.UserName = src.UserName
		dst.ProfilePhotoURL = src.ProfilePhotoURL
		dst.Active = src.Active
	},
	Stamp: func(r *entity.User, now time.Time) { r.CreatedAt = now },
}

var rolDef = Definition[dto.Rol, entity.Rol]{
	Entity: "Rol",
	ToRecord: func(in *dto.Rol) *entity.Rol {
		return &entity.Rol{Name: in.Name, Code: in.Code}
	},
	ToDTO: func(r *entity.Rol) dto.Rol {
		return dto.Rol{Identity: dto.Identity{ID: r.ID}, Name: r.Name, Code: r.Code, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.Rol, src *dto.Rol) {
		dst.Name = src.Name
		dst.Code = src.Code
	},
	Stamp: func(r *entity.Rol, now time.Time) { r.CreatedAt = now },
}

var rolUserDef = Definition[dto.RolUser, entity.RolUser]{
	Entity: "RolUser",
	ToRecord: func(in *dto.RolUser) *entity.RolUser {
		return &entity.RolUser{RolID: in.RolID, UserID: in.UserID}
	},
	ToDTO: func(r *entity.RolUser) dto.RolUser {
		return dto.RolUser{Identity: dto.Identity{ID: r.ID}, RolID: r.RolID, UserID: r.UserID, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.RolUser, src *dto.RolUser) {
		dst.RolID = src.RolID
		dst.UserID = src.UserID
	},
	Stamp: func(r *entity.RolUser, now time.Time) { r.CreatedAt = now },
}

var formModuleDef = Definition[dto.FormModule, entity.FormModule]{
	Entity: "FormModule",
	ToRecord: func(in *dto.FormModule) *entity.FormModule {
		return &entity.FormModule{FormID: in.FormID, ModuleID: in.ModuleID}
	},
	ToDTO: func(r *entity.FormModule) dto.FormModule {
		return dto.FormModule{Identity: dto.Identity{ID: r.ID}, FormID: r.FormID, ModuleID: r.ModuleID, Audit: dto.Stamp(r.CreatedAt)}
	},
	Merge: func(dst *entity.FormModule, src *dto.FormModule) {
		dst.FormID = src.FormID
		dst.ModuleID = src.ModuleID
	},
	Stamp: func(r *entity.FormModule, now time.Time) { r.CreatedAt = now },
}

var rolFormPermissionDef = Definition[dto.RolFormPermission, entity.RolFormPermission]{
	Entity: "RolFormPermission",
	ToRecord: func(in *dto.RolFormPermission) *entity.RolFormPermission {
		return &entity.RolFormPermission{RolID: in.RolID, FormID: in.FormID, PermissionID: in.PermissionID}
	},
	ToDTO: func(r *entity.RolFormPermission) dto.RolFormPermission {
		return dto.RolFormPermission{
			Identity:     dto.Identity{ID: r.ID},
			RolID:        r.RolID,
			FormID:       r.FormID,
			PermissionID: r.PermissionID,
			Audit:        dto.Stamp(r.CreatedAt),
		}
	},
	Merge: func(dst *entity.RolFormPermission, src *dto.RolFormPermission) {
		dst.RolID = src.RolID
		dst.FormID = src.FormID
		dst.PermissionID = src.PermissionID
	},
	Stamp: func(r *entity.RolFormPermission, now time.Time) { r.CreatedAt = now },
}
