package usecase

import (
	"go.uber.org/fx"

	"github.com/greencart/storefront/internal/config"
	"github.com/greencart/storefront/internal/domain/repository"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewOrderUseCase,
	NewCatalogUseCase,
	NewAddressUseCase,
	NewCartUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Hasher   pkgAuth.PasswordHasher
	Strategy pkgAuth.Strategy
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	seller := SellerCredentials{Email: p.Config.SellerEmail, Password: p.Config.SellerPassword}
	return NewAuthUseCase(p.Users, p.Hasher, p.Strategy, seller)
}
