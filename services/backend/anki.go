package backend

import (
	"context"
	"strconv"

	"github.com/trezcool/lava/core/anki"
)

// ReviewAnkiCard grades a recall and returns the rescheduled card.
func (c *Client) ReviewAnkiCard(ctx context.Context, cardID int, review anki.CardReview) (anki.Card, error) {
	var card anki.Card
	if err := review.Validate(); err != nil {
		return card, err
	}
	err := c.patch(ctx, "anki.reviewCard", "/anki-cards/"+strconv.Itoa(cardID)+"/review", review, &card)
	return card, err
}
