package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// Redeem spends the product price and takes one unit of stock.
// The balance is checked before the stock.
func (s *Service) Redeem(ctx context.Context, userID, productID uint64) (*entity.Redemption, error) {
	if err := validateIDs(userID, productID); err != nil {
		return nil, err
	}
	started := s.timeProvider.Now()

	var result *entity.Redemption
	err := s.uow.Execute(ctx, OpRedeem, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		products := s.uow.GetProductRepository(txCtx)
		redemptions := s.uow.GetRedemptionRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		product, err := products.GetByIDForUpdate(txCtx, productID)
		if err != nil {
			return err
		}
		if !product.Active {
			return fmt.Errorf("%w: product %d is inactive", errs.ErrNotFound, productID)
		}

		if err := user.Debit(product.PointsRequired, s.timeProvider); err != nil {
			return err
		}
		if err := product.TakeUnit(); err != nil {
			return err
		}

		redemption := entity.NewRedemption(userID, product, s.timeProvider)
		if err := redemptions.Create(txCtx, redemption); err != nil {
			return err
		}
		if err := users.UpdatePoints(txCtx, user); err != nil {
			return err
		}
		if err := products.UpdateStock(txCtx, product); err != nil {
			return err
		}
		if err := s.appendEntry(txCtx, user, entity.EntryRedeemed, -redemption.PointsSpent, entity.ReferenceRedemption, redemption.ID); err != nil {
			return err
		}

		result = redemption
		return nil
	})

	if err := s.finish(OpRedeem, started, userID, "product", productID, err); err != nil {
		return nil, err
	}
	return result, nil
}

// markDelivered flips the delivered flag of one redemption
func (s *Service) markDelivered(ctx context.Context, redemptionID uint64) (*entity.Redemption, error) {
	started := s.timeProvider.Now()

	var result *entity.Redemption
	var userID uint64
	err := s.uow.Execute(ctx, OpMarkDelivered, func(txCtx context.Context) error {
		redemptions := s.uow.GetRedemptionRepository(txCtx)

		redemption, err := redemptions.GetByIDForUpdate(txCtx, redemptionID)
		if err != nil {
			return err
		}
		userID = redemption.UserID

		if err := redemption.MarkDelivered(s.timeProvider); err != nil {
			return err
		}
		if err := redemptions.MarkDelivered(txCtx, redemption); err != nil {
			return err
		}

		user, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, redemption.UserID)
		if err != nil {
			return err
		}
		if err := s.appendEntry(txCtx, user, entity.EntryDelivered, 0, entity.ReferenceRedemption, redemption.ID); err != nil {
			return err
		}

		result = redemption
		return nil
	})

	if err := s.finish(OpMarkDelivered, started, userID, "redemption", redemptionID, err); err != nil {
		return nil, err
	}
	return result, nil
}
