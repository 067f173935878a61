package handlers

import (
	"github.com/jmoiron/sqlx"

	"orderdesk/internal/repos"
	"orderdesk/internal/services"
)

type Deps struct {
	OrderHandler   *OrderHandler
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	orderSvc := services.NewOrderService(db, userRepo, prodRepo, orderRepo)
	authSvc := &services.AuthService{Users: userRepo}

	return &Deps{
		OrderHandler:   &OrderHandler{Order: orderSvc},
		ProductHandler: &ProductHandler{Products: prodRepo},
		AuthHandler:    &AuthHandler{Auth: authSvc},
	}
}
