package client

import (
	"context"
	"strconv"
	"strings"

	"sunshare/internal/models"
)

// HostForm is the "list your roof" form.
type HostForm struct {
	OwnerName string
	Title     string
	Location  string
	AreaSqFt  string
}

func (f *HostForm) Reset() {
	*f = HostForm{}
}

// Request converts the form. A blank or non-numeric area is sent as 1000 and
// new listings always start unfunded.
func (f HostForm) Request() models.CreatePropertyRequest {
	area := models.DefaultAreaSqFt
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.AreaSqFt), 64); err == nil && v != 0 {
		area = v
	}
	return models.CreatePropertyRequest{
		OwnerName:   f.OwnerName,
		Title:       f.Title,
		Location:    f.Location,
		AreaSqFt:    models.Number(area),
		FundedLevel: models.Number(0),
	}
}

// SubmitResult is the outcome of SubmitListing. Properties holds the
// refreshed listings and is nil when the refresh failed.
type SubmitResult struct {
	Created    *models.WireProperty
	Properties []models.WireProperty
}

// SubmitListing posts the form, clears it on success and refetches the
// listings. The form is left untouched when the post fails.
func (c *Client) SubmitListing(ctx context.Context, form *HostForm) (*SubmitResult, error) {
	created, err := c.CreateProperty(ctx, form.Request())
	if err != nil {
		c.log.Warn("Failed to submit listing", "error", err)
		return nil, err
	}
	form.Reset()

	result := &SubmitResult{Created: created}
	props, _, err := c.ListProperties(ctx)
	if err != nil {
		c.log.Warn("Failed to refresh listings after submit", "error", err)
		return result, nil
	}
	result.Properties = props
	return result, nil
}
