package sqlstore

import "github.com/jhoicas/mercado-api/internal/domain/entity"

const colDeletedAt = "deleted_at"

var (
	createdAt = Column{Name: "created_at"}
	deletedAt = Column{Name: colDeletedAt}
)

func mut(name string) Column { return Column{Name: name, Mutable: true} }

// CategorySchema tabla category.
var CategorySchema = Schema[entity.Category]{
	Entity: "Category", Table: "category", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("name"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Category) []any {
		return []any{&r.ID, &r.Name, &r.CreatedAt, &r.DeletedAt}
	},
}

// ConsumerSchema tabla consumer.
var ConsumerSchema = Schema[entity.Consumer]{
	Entity: "Consumer", Table: "consumer", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("active"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Consumer) []any {
		return []any{&r.ID, &r.Active, &r.CreatedAt, &r.DeletedAt}
	},
}

// ProducerSchema tabla producer.
var ProducerSchema = Schema[entity.Producer]{
	Entity: "Producer", Table: "producer", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("address"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Producer) []any {
		return []any{&r.ID, &r.Address, &r.CreatedAt, &r.DeletedAt}
	},
}

// ProductSchema tabla product.
var ProductSchema = Schema[entity.Product]{
	Entity: "Product", Table: "product", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("category_id"), mut("favorite_id"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Product) []any {
		return []any{&r.ID, &r.CategoryID, &r.FavoriteID, &r.CreatedAt, &r.DeletedAt}
	},
}

// ProducerProductSchema tabla producer_product.
var ProducerProductSchema = Schema[entity.ProducerProduct]{
	Entity: "ProducerProduct", Table: "producer_product", Key: []string{"id"}, Generated: true,
	Columns: []Column{
		mut("producer_id"), mut("product_id"), mut("name"), mut("description"), mut("price"),
		mut("production"), mut("availability"), mut("image_url"), createdAt, deletedAt,
	},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.ProducerProduct) []any {
		return []any{
			&r.ID, &r.ProducerID, &r.ProductID, &r.Name, &r.Description, &r.Price,
			&r.Production, &r.Availability, &r.ImageURL, &r.CreatedAt, &r.DeletedAt,
		}
	},
}

// FavoriteSchema tabla favorite.
var FavoriteSchema = Schema[entity.Favorite]{
	Entity: "Favorite", Table: "favorite", Key: []string{"id"}, Generated: true,
	Columns: []Column{
		mut("consumer_id"), mut("producer_id"), mut("product_id"), {Name: "date_added"}, createdAt, deletedAt,
	},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Favorite) []any {
		return []any{&r.ID, &r.ConsumerID, &r.ProducerID, &r.ProductID, &r.DateAdded, &r.CreatedAt, &r.DeletedAt}
	},
}

// OrderSchema tabla orders (ORDER es palabra reservada).
var OrderSchema = Schema[entity.Order]{
	Entity: "Order", Table: "orders", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("consumer_id"), mut("status"), mut("note"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Order) []any {
		return []any{&r.ID, &r.ConsumerID, &r.Status, &r.Note, &r.CreatedAt, &r.DeletedAt}
	},
}

// ReviewSchema tabla review, clave compuesta (consumer_id, product_id).
var ReviewSchema = Schema[entity.Review]{
	Entity: "Review", Table: "review", Key: []string{"consumer_id", "product_id"},
	Columns:    []Column{mut("rating"), mut("comment"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Review) []any {
		return []any{&r.ConsumerID, &r.ProductID, &r.Rating, &r.Comment, &r.CreatedAt, &r.DeletedAt}
	},
}

// FormSchema tabla form (sin borrado lógico).
var FormSchema = Schema[entity.Form]{
	Entity: "Form", Table: "form", Key: []string{"id"}, Generated: true,
	Columns: []Column{mut("name"), mut("description"), mut("url")},
	Fields: func(r *entity.Form) []any {
		return []any{&r.ID, &r.Name, &r.Description, &r.URL}
	},
}

// ModuleSchema tabla module (sin borrado lógico).
var ModuleSchema = Schema[entity.Module]{
	Entity: "Module", Table: "module", Key: []string{"id"}, Generated: true,
	Columns: []Column{mut("name"), mut("description")},
	Fields: func(r *entity.Module) []any {
		return []any{&r.ID, &r.Name, &r.Description}
	},
}

// PermissionSchema tabla permission (sin borrado lógico).
var PermissionSchema = Schema[entity.Permission]{
	Entity: "Permission", Table: "permission", Key: []string{"id"}, Generated: true,
	Columns: []Column{mut("name"), mut("description")},
	Fields: func(r *entity.Permission) []any {
		return []any{&r.ID, &r.Name, &r.Description}
	},
}

// PersonaSchema tabla persona (sin borrado lógico).
var PersonaSchema = Schema[entity.Persona]{
	Entity: "Persona", Table: "persona", Key: []string{"id"}, Generated: true,
	Columns: []Column{mut("name"), mut("email"), mut("phone_number")},
	Fields: func(r *entity.Persona) []any {
		return []any{&r.ID, &r.Name, &r.Email, &r.PhoneNumber}
	},
}

// UserSchema tabla users.
var UserSchema = Schema[entity.User]{
	Entity: "User", Table: "users", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("user_name"), mut("profile_photo_url"), mut("active"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.User) []any {
		return []any{&r.ID, &r.UserName, &r.ProfilePhotoURL, &r.Active, &r.CreatedAt, &r.DeletedAt}
	},
}

// RolSchema tabla rol.
var RolSchema = Schema[entity.Rol]{
	Entity: "Rol", Table: "rol", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("name"), mut("code"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.Rol) []any {
		return []any{&r.ID, &r.Name, &r.Code, &r.CreatedAt, &r.DeletedAt}
	},
}

// RolUserSchema tabla rol_user.
var RolUserSchema = Schema[entity.RolUser]{
	Entity: "RolUser", Table: "rol_user", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("rol_id"), mut("user_id"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.RolUser) []any {
		return []any{&r.ID, &r.RolID, &r.UserID, &r.CreatedAt, &r.DeletedAt}
	},
}

// FormModuleSchema tabla form_module.
var FormModuleSchema = Schema[entity.FormModule]{
	Entity: "FormModule", Table: "form_module", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("form_id"), mut("module_id"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.FormModule) []any {
		return []any{&r.ID, &r.FormID, &r.ModuleID, &r.CreatedAt, &r.DeletedAt}
	},
}

// RolFormPermissionSchema tabla rol_form_permission.
var RolFormPermissionSchema = Schema[entity.RolFormPermission]{
	Entity: "RolFormPermission", Table: "rol_form_permission", Key: []string{"id"}, Generated: true,
	Columns:    []Column{mut("rol_id"), mut("form_id"), mut("permission_id"), createdAt, deletedAt},
	SoftDelete: colDeletedAt,
	Fields: func(r *entity.RolFormPermission) []any {
		return []any{&r.ID, &r.RolID, &r.FormID, &r.PermissionID, &r.CreatedAt, &r.DeletedAt}
	},
}
