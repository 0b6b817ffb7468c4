package handler

import (
	"quoteapi/internal/domain/entity"
)

// TokenResponse carries the bearer token issued on register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserInfoResponse is the public view of an account.
type UserInfoResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	DisplayedName string `json:"displayedName"`
}

// QuoteResponse is the wire shape of a quote.
type QuoteResponse struct {
	ID        int64             `json:"id"`
	Quote     string            `json:"quote"`
	SaidBy    string            `json:"saidBy"`
	When      string            `json:"when"`
	User      *UserInfoResponse `json:"user,omitempty"`
	CreatedOn string            `json:"createdOn"`
}

func newUserInfoResponse(info *entity.UserInfo) *UserInfoResponse {
	if info == nil {
		return nil
	}

	return &UserInfoResponse{
		ID:            info.ID,
		Username:      info.Username,
		DisplayedName: info.DisplayedName,
	}
}

func newQuoteResponse(q *entity.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:        q.ID,
		Quote:     q.Content,
		SaidBy:    q.WhoSaid,
		When:      q.WhenSaid.Format(entity.DateLayout),
		User:      newUserInfoResponse(q.User.Info()),
		CreatedOn: q.CreatedAt.Format(entity.DateTimeLayout),
	}
}

func newQuoteResponses(quotes []*entity.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, newQuoteResponse(q))
	}

	return out
}
