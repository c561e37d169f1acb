package commands

import (
	"context"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyRoomPatch = errs.New("room patch has no fields")

type RoomCommands interface {
	UpdateRoom(ctx context.Context, roomID uuid.UUID, fields shared.RoomPatch) error
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	views RoomViewInvalidator
}

func NewRoomUseCase(uow shared.UnitOfWork, views RoomViewInvalidator) RoomCommands {
	return &roomUseCaseImpl{uow: uow, views: views}
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, fields shared.RoomPatch) error {
	if fields.Empty() {
		return ErrEmptyRoomPatch
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().RoomForUpdate(ctx, roomID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}
		if uerr := tx.Rooms().UpdateFields(ctx, tx.DB(), roomID, fields); uerr != nil {
			return errs.Mark(uerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.views.InvalidateRoom(ctx, roomID)
	return nil
}
