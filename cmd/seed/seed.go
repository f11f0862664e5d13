package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

type seedFile struct {
	Categories  []string    `mapstructure:"categories"`
	Modules     []namedItem `mapstructure:"modules"`
	Forms       []formItem  `mapstructure:"forms"`
	Permissions []namedItem `mapstructure:"permissions"`
	Roles       []rolItem   `mapstructure:"roles"`
}

type namedItem struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

type formItem struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	URL         string `mapstructure:"url"`
	Module      string `mapstructure:"module"` // nombre del módulo al que pertenece (opcional)
}

type rolItem struct {
	Name   string      `mapstructure:"name"`
	Code   string      `mapstructure:"code"`
	Grants []grantItem `mapstructure:"grants"`
}

// grantItem permiso de un rol sobre un formulario, por nombre.
type grantItem struct {
	Form       string `mapstructure:"form"`
	Permission string `mapstructure:"permission"`
}

type result struct {
	Categories, Modules, Forms, Permissions, Roles, Grants int
}

// Transactor ejecuta fn con stores atados a una transacción.
type Transactor interface {
	Run(ctx context.Context, fn func(stores repository.Stores) error) error
}

// decoderFor codificación de x/text para el charset indicado; nil para UTF-8.
func decoderFor(charset string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("charset %q no soportado", charset)
	}
}

// readSeed decodifica r a UTF-8 y lo interpreta como YAML con viper.
func readSeed(r io.Reader, charset string) (*seedFile, error) {
	enc, err := decoderFor(charset)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	var out seedFile
	if err := v.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return &out, nil
}

// apply inserta todo el contenido a través de los servicios de entidad dentro de una transacción.
func apply(ctx context.Context, tx Transactor, val usecase.Validator, log *logger.Logger, data *seedFile) (result, error) {
	var res result
	err := tx.Run(ctx, func(stores repository.Stores) error {
		res = result{}
		cat := usecase.NewCatalog(stores, val, nil, log)

		for _, name := range data.Categories {
			if _, err := cat.Category.Create(ctx, &dto.Category{Name: name}); err != nil {
				return fmt.Errorf("categoría %q: %w", name, err)
			}
			res.Categories++
		}

		modules := make(map[string]int64, len(data.Modules))
		for _, m := range data.Modules {
			out, err := cat.Module.Create(ctx, &dto.Module{Name: m.Name, Description: m.Description})
			if err != nil {
				return fmt.Errorf("módulo %q: %w", m.Name, err)
			}
			modules[m.Name] = out.ID
			res.Modules++
		}

		forms := make(map[string]int64, len(data.Forms))
		for _, f := range data.Forms {
			out, err := cat.Form.Create(ctx, &dto.Form{Name: f.Name, Description: f.Description, URL: f.URL})
			if err != nil {
				return fmt.Errorf("formulario %q: %w", f.Name, err)
			}
			forms[f.Name] = out.ID
			res.Forms++

			if f.Module == "" {
				continue
			}
			moduleID, ok := modules[f.Module]
			if !ok {
				return fmt.Errorf("formulario %q: módulo %q no declarado", f.Name, f.Module)
			}
			if _, err := cat.FormModule.Create(ctx, &dto.FormModule{FormID: out.ID, ModuleID: moduleID}); err != nil {
				return fmt.Errorf("formulario %q en módulo %q: %w", f.Name, f.Module, err)
			}
		}

		permissions := make(map[string]int64, len(data.Permissions))
		for _, p := range data.Permissions {
			out, err := cat.Permission.Create(ctx, &dto.Permission{Name: p.Name, Description: p.Description})
			if err != nil {
				return fmt.Errorf("permiso %q: %w", p.Name, err)
			}
			permissions[p.Name] = out.ID
			res.Permissions++
		}

		for _, r := range data.Roles {
			rol, err := cat.Rol.Create(ctx, &dto.Rol{Name: r.Name, Code: r.Code})
			if err != nil {
				return fmt.Errorf("rol %q: %w", r.Name, err)
			}
			res.Roles++

			for _, g := range r.Grants {
				formID, ok := forms[g.Form]
				if !ok {
					return fmt.Errorf("rol %q: formulario %q no declarado", r.Name, g.Form)
				}
				permID, ok := permissions[g.Permission]
				if !ok {
					return fmt.Errorf("rol %q: permiso %q no declarado", r.Name, g.Permission)
				}
				grant := &dto.RolFormPermission{RolID: rol.ID, FormID: formID, PermissionID: permID}
				if _, err := cat.RolFormPermission.Create(ctx, grant); err != nil {
					return fmt.Errorf("rol %q sobre %q: %w", r.Name, g.Form, err)
				}
				res.Grants++
			}
		}
		return nil
	})
	if err != nil {
		return result{}, err
	}
	return res, nil
}
