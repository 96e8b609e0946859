package port

import "github.com/bnema/dumbed/internal/domain/entity"

// ConfigSchemaProvider describes the configuration keys dumbed understands.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
