package app

import (
	"go-hrfine/internal/auth"
	"go-hrfine/internal/client"
	"go-hrfine/internal/employee"
	"go-hrfine/internal/lookup"
	"go-hrfine/internal/messaging/outbox"
	"go-hrfine/internal/project"
	"go-hrfine/internal/shared/counter"
	"go-hrfine/internal/timesheet"
	"go-hrfine/internal/user"

	"gorm.io/gorm"
)

// Models lists every table the API owns, parents before children.
func Models() []any {
	models := lookup.Models()
	models = append(models,
		&user.User{},
		&auth.RefreshToken{},
		&counter.SequenceCounter{},
	)
	models = append(models, employee.Models()...)
	models = append(models, &client.Client{})
	models = append(models, project.Models()...)
	models = append(models,
		&timesheet.TimeStamp{},
		&outbox.Event{},
	)
	return models
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
