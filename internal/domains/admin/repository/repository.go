package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"mountmix/infras/otel"
	"mountmix/infras/sqlite"
	"mountmix/internal/domains/admin/model"
	gDto "mountmix/shared/dto"
	gRepo "mountmix/shared/repository"
)

type Admin interface {
	Insert(ctx context.Context, model model.Admin) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Admin, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
}

func New(db *sqlite.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FilterByEmail matches the unique admin email.
func FilterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
