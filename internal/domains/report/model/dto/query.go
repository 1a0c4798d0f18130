package dto

import (
	"hotelier/internal/domains/report/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
	"hotelier/shared/validator"
	"net/http"
	"strings"
	"time"
)

// ReportQuery is the raw query string shared by every report endpoint.
type ReportQuery struct {
	From                     string `json:"from"                       validate:"omitempty,isodate"`
	To                       string `json:"to"                         validate:"omitempty,isodate"`
	Mode                     string `json:"mode"                       validate:"omitempty,oneof=actual forecast"`
	GroupBy                  string `json:"group_by"                   validate:"omitempty,oneof=day room_type roomtype room branch hotel"`
	Currency                 string `json:"currency"                   validate:"omitempty,iso4217"`
	IncludeRoomTypes         bool   `json:"include_room_types"`
	IncludeExpenseCategories bool   `json:"include_expense_categories"`
}

func (q *ReportQuery) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.From = strings.TrimSpace(query.Get(constant.RequestParamFrom))
	q.To = strings.TrimSpace(query.Get(constant.RequestParamTo))
	q.Mode = strings.ToLower(strings.TrimSpace(query.Get(constant.RequestParamMode)))
	q.GroupBy = strings.ToLower(strings.TrimSpace(query.Get(constant.RequestParamGroupBy)))
	q.Currency = strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamCurrency)))

	if include := shared.ConvertStringToBool(query.Get(constant.RequestParamIncludeRoomTypes)); include != nil {
		q.IncludeRoomTypes = *include
	}

	if include := shared.ConvertStringToBool(query.Get(constant.RequestParamIncludeExpenseCategories)); include != nil {
		q.IncludeExpenseCategories = *include
	}
}

// Criteria is a validated query. Nil dates are resolved per report.
type Criteria struct {
	From                     *time.Time    `json:"from,omitempty"`
	To                       *time.Time    `json:"to,omitempty"`
	Mode                     model.Mode    `json:"mode"`
	GroupBy                  model.GroupBy `json:"group_by"`
	Currency                 string        `json:"currency"`
	IncludeRoomTypes         bool          `json:"include_room_types"`
	IncludeExpenseCategories bool          `json:"include_expense_categories"`
}

// Criteria validates the query and fills mode, group and currency defaults.
func (q ReportQuery) Criteria(defaultCurrency string) (Criteria, error) {
	if err := validator.ValidateStruct(&q); err != nil {
		return Criteria{}, err //nolint:wrapcheck
	}

	mode, err := model.ParseMode(q.Mode)
	if err != nil {
		return Criteria{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	groupBy, err := model.ParseGroupBy(q.GroupBy)
	if err != nil {
		return Criteria{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	criteria := Criteria{
		Mode:                     mode,
		GroupBy:                  groupBy,
		Currency:                 strings.ToUpper(q.Currency),
		IncludeRoomTypes:         q.IncludeRoomTypes,
		IncludeExpenseCategories: q.IncludeExpenseCategories,
	}

	if criteria.Currency == "" {
		criteria.Currency = strings.ToUpper(defaultCurrency)
	}

	if criteria.From, err = optionalDate(q.From); err != nil {
		return Criteria{}, err
	}

	if criteria.To, err = optionalDate(q.To); err != nil {
		return Criteria{}, err
	}

	return criteria, nil
}

func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return nil, failure.InvalidDateParam
	}

	return &date, nil
}
