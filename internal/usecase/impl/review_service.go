package impl

import (
	"context"
	"log/slog"

	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"
)

// CreateReview validates the review, resolves its user and then its place,
// and links the stored review to the place.
func (srv *catalogService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	review, err := entity.NewReview(entity.ReviewParams{
		Text:    input.Text,
		Rating:  input.Rating,
		PlaceID: input.PlaceID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, err := srv.resolveUser(ctx, review.UserID); err != nil {
		return nil, err
	}
	if _, ok := srv.placeRepo.Get(ctx, review.PlaceID); !ok {
		return nil, domainerrors.NewReferenceError(entity.KindPlace, review.PlaceID)
	}

	if err := srv.reviewRepo.Add(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to add review")
	}
	if _, err := srv.placeRepo.Update(ctx, review.PlaceID, entity.AppendReview(review.ID)); err != nil {
		srv.reviewRepo.Delete(ctx, review.ID)

		return nil, errors.Wrap(err, "failed to link review to place")
	}

	srv.log(ctx).Info("Review created",
		slog.String("reviewID", review.ID),
		slog.String("placeID", review.PlaceID),
		slog.String("userID", review.UserID),
	)

	return review, nil
}

func (srv *catalogService) GetReview(ctx context.Context, id string) *entity.Review {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	review, _ := srv.reviewRepo.Get(ctx, id)

	return review
}

func (srv *catalogService) GetAllReviews(ctx context.Context) []*entity.Review {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.reviewRepo.GetAll(ctx)
}

func (srv *catalogService) GetReviewsForPlace(ctx context.Context, placeID string) ([]*entity.Review, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	place, ok := srv.placeRepo.Get(ctx, placeID)
	if !ok {
		return nil, false
	}

	return srv.placeReviews(ctx, place), true
}

func (srv *catalogService) UpdateReview(ctx context.Context, id string, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.reviewRepo.Get(ctx, id); !ok {
		return nil, nil
	}

	review, err := srv.reviewRepo.Update(ctx, id, entity.ReviewPatch{
		Text:   input.Text,
		Rating: input.Rating,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Review updated", slog.String("reviewID", id))

	return review, nil
}

// DeleteReview removes the review and unlinks it from its place.
func (srv *catalogService) DeleteReview(ctx context.Context, id string) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	review, ok := srv.reviewRepo.Get(ctx, id)
	if !ok {
		return false
	}

	srv.reviewRepo.Delete(ctx, id)
	if _, err := srv.placeRepo.Update(ctx, review.PlaceID, entity.RemoveReview(id)); err != nil {
		srv.log(ctx).Warn("Deleted review had no place to unlink from",
			slog.String("reviewID", id),
			slog.String("placeID", review.PlaceID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Review deleted", slog.String("reviewID", id))

	return true
}

// placeReviews returns the stored reviews of place in link order. Callers hold the lock.
func (srv *catalogService) placeReviews(ctx context.Context, place *entity.Place) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(place.ReviewIDs))
	for _, reviewID := range place.ReviewIDs {
		if review, ok := srv.reviewRepo.Get(ctx, reviewID); ok {
			reviews = append(reviews, review)
		}
	}

	return reviews
}
