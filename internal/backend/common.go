package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"charterdesk/internal/backend/models"
)

// Dropdown and lookup endpoints shared by every page.

func (c *Client) Currencies(ctx context.Context) ([]models.Currency, error) {
	return list[models.Currency](ctx, c, ServiceBasic, "/currencyInfo/dropDownList", nil, nil)
}

// GuestBusinesses lists customers/suppliers whose full name matches the filter. An
// empty filter lists all of them.
func (c *Client) GuestBusinesses(ctx context.Context, customerFullName string) ([]models.GuestBusiness, error) {
	q := url.Values{"customerFullName": {customerFullName}}
	return list[models.GuestBusiness](ctx, c, ServiceVessel, "/guestBusiness/getGuestBusinessList", q, nil)
}

func (c *Client) GuestBusinessDetail(ctx context.Context, id string) (json.RawMessage, error) {
	const path = "/guestBusiness/getById"
	data, err := c.call(ctx, ServiceVessel, path, url.Values{"id": {id}}, nil)
	if err != nil {
		return nil, err
	}
	if !data.Exists() || !data.IsObject() {
		return nil, toDomain(&UpstreamError{Category: CategoryNotFound, Service: ServiceVessel, Path: path, Message: "guest business not found"})
	}
	return json.RawMessage(data.Raw), nil
}

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, ServiceBasic, "/projectInfo/dropdownList", nil, nil)
}

func (c *Client) ProjectGroups(ctx context.Context) ([]models.ProjectGroup, error) {
	return list[models.ProjectGroup](ctx, c, ServiceBasic, "/projectGroup/dropDownList", nil, emptyBody)
}

func (c *Client) Vessels(ctx context.Context) ([]models.Vessel, error) {
	return list[models.Vessel](ctx, c, ServiceVessel, "/vesselInfo/listAll", nil, nil)
}

func (c *Client) AreaTree(ctx context.Context) (json.RawMessage, error) {
	data, err := c.call(ctx, ServiceBasic, "/area/tree", nil, nil)
	if err != nil {
		return nil, err
	}
	return rawData(data, "[]"), nil
}

// AreaParentChain returns the province/city/district chain ending at areaID.
func (c *Client) AreaParentChain(ctx context.Context, areaID string) (json.RawMessage, error) {
	data, err := c.call(ctx, ServiceBasic, "/area/parentChainByAreaId", url.Values{"areaId": {areaID}}, nil)
	if err != nil {
		return nil, err
	}
	return rawData(data, "[]"), nil
}

func (c *Client) Ports(ctx context.Context) ([]models.Port, error) {
	return list[models.Port](ctx, c, ServiceBasic, "/port/list", nil, nil)
}

func (c *Client) Orgs(ctx context.Context) ([]models.Org, error) {
	return list[models.Org](ctx, c, ServiceEmployee, "/org/selectAll", nil, emptyBody)
}

func (c *Client) Goods(ctx context.Context) ([]models.Goods, error) {
	return list[models.Goods](ctx, c, ServiceBasic, "/goodsInfo/list", nil, nil)
}

func (c *Client) IndexTypeGroups(ctx context.Context) (json.RawMessage, error) {
	data, err := c.call(ctx, ServiceBasic, "/indexArchives/getIndexTypeGroup", nil, nil)
	if err != nil {
		return nil, err
	}
	return rawData(data, "[]"), nil
}

func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	return list[models.Country](ctx, c, ServiceBasic, "/countryInfo/getAll", nil, nil)
}

func (c *Client) CategoryTreeWithSubject(ctx context.Context) ([]models.TreeNode, error) {
	return list[models.TreeNode](ctx, c, ServiceBasic, "/expenseCategory/treeWithSubject", nil, nil)
}

func (c *Client) VoyageNoConfigs(ctx context.Context) ([]models.VoyageNoConfig, error) {
	return list[models.VoyageNoConfig](ctx, c, ServiceVessel, "/voyageNoConfig/list", nil, emptyBody)
}

// VoyageNoConfigExts lists the external (business) voyage numbers.
func (c *Client) VoyageNoConfigExts(ctx context.Context) ([]models.VoyageNoConfigExt, error) {
	return list[models.VoyageNoConfigExt](ctx, c, ServiceVessel, "/voyageNoConfigExt/list", nil, emptyBody)
}

// ExpenseSubjects and StatisticsSubjects hit the same endpoint; the former sends an
// empty filter object.
func (c *Client) ExpenseSubjects(ctx context.Context) ([]models.Subject, error) {
	return list[models.Subject](ctx, c, ServiceBasic, "/expenseSubject/getSubjectList", nil, emptyBody)
}

func (c *Client) StatisticsSubjects(ctx context.Context) ([]models.Subject, error) {
	return list[models.Subject](ctx, c, ServiceBasic, "/expenseSubject/getSubjectList", nil, nil)
}

func (c *Client) ExpenseCategories(ctx context.Context) ([]models.Category, error) {
	return list[models.Category](ctx, c, ServiceBasic, "/expenseCategory/getCategoryList", nil, nil)
}

func (c *Client) Employees(ctx context.Context) ([]models.Employee, error) {
	return list[models.Employee](ctx, c, ServiceEmployee, "/employee/selectAll", nil, emptyBody)
}
