package dictionary

import (
	"fmt"

	"charterdesk/internal/backend/models"
)

// Bundle is the resolved set of backend-sourced option lists.
type Bundle struct {
	BusinessCodes           StringOptions     `json:"business_codes"`
	Operators               []Option[int64]   `json:"operators"`
	Projects                StringOptions     `json:"projects"`
	ProjectGroups           StringOptions     `json:"project_groups"`
	Ships                   StringOptions     `json:"ships"`
	Ports                   StringOptions     `json:"ports"`
	GoodsTypes              StringOptions     `json:"goods_types"`
	Orgs                    StringOptions     `json:"orgs"`
	Currencies              StringOptions     `json:"currencies"`
	CategoryWithSubjectTree []models.TreeNode `json:"category_with_subject_tree"`
	VoyageNos               StringOptions     `json:"voyage_nos"`
	Subjects                StringOptions     `json:"subjects"`
	ExpenseCategories       StringOptions     `json:"expense_categories"`
	ExternalVoyageNos       StringOptions     `json:"external_voyage_nos"`
	Countries               StringOptions     `json:"countries"`
}

var bundleNames = []string{
	"business_codes", "operators", "projects", "project_groups", "ships", "ports",
	"goods_types", "orgs", "currencies", "category_with_subject_tree", "voyage_nos",
	"subjects", "expense_categories", "external_voyage_nos", "countries",
}

// Names lists the dictionaries a Bundle carries, in load order.
func Names() []string {
	return append([]string(nil), bundleNames...)
}

// Lookup returns one dictionary by its JSON name.
func (b *Bundle) Lookup(name string) (any, bool) {
	switch name {
	case "business_codes":
		return b.BusinessCodes, true
	case "operators":
		return b.Operators, true
	case "projects":
		return b.Projects, true
	case "project_groups":
		return b.ProjectGroups, true
	case "ships":
		return b.Ships, true
	case "ports":
		return b.Ports, true
	case "goods_types":
		return b.GoodsTypes, true
	case "orgs":
		return b.Orgs, true
	case "currencies":
		return b.Currencies, true
	case "category_with_subject_tree":
		return b.CategoryWithSubjectTree, true
	case "voyage_nos":
		return b.VoyageNos, true
	case "subjects":
		return b.Subjects, true
	case "expense_categories":
		return b.ExpenseCategories, true
	case "external_voyage_nos":
		return b.ExternalVoyageNos, true
	case "countries":
		return b.Countries, true
	}
	return nil, false
}

// raw holds the fetched lists before mapping.
type raw struct {
	guestBusinesses []models.GuestBusiness
	employees       []models.Employee
	projects        []models.Project
	projectGroups   []models.ProjectGroup
	vessels         []models.Vessel
	ports           []models.Port
	goods           []models.Goods
	orgs            []models.Org
	currencies      []models.Currency
	categoryTree    []models.TreeNode
	voyageNos       []models.VoyageNoConfig
	subjects        []models.Subject
	categories      []models.Category
	extVoyageNos    []models.VoyageNoConfigExt
	countries       []models.Country
}

func mapOptions[T any, V comparable](items []T, fn func(T) Option[V]) []Option[V] {
	out := make([]Option[V], 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func disabled(isEnable *int) bool {
	return isEnable != nil && *isEnable == 0
}

// BusinessOptions maps guest businesses to options labelled with their rating.
func BusinessOptions(items []models.GuestBusiness) StringOptions {
	return mapOptions(items, func(g models.GuestBusiness) Option[string] {
		return Option[string]{
			Label:    fmt.Sprintf("%s(%s)", g.CustomerFullName, GuestRatingLabel(g.GuestRating)),
			Value:    g.Code,
			Disabled: disabled(g.IsEnable),
			Meta:     map[string]any{"id": g.ID},
		}
	})
}

// SubjectOptions maps expense subjects to options.
func SubjectOptions(items []models.Subject) StringOptions {
	return mapOptions(items, func(s models.Subject) Option[string] {
		return Option[string]{Label: s.CnName, Value: s.Code}
	})
}

func (r *raw) bundle() *Bundle {
	b := &Bundle{
		BusinessCodes: BusinessOptions(r.guestBusinesses),
		Operators: mapOptions(r.employees, func(e models.Employee) Option[int64] {
			return Option[int64]{Label: e.EmployeeName, Value: e.EmployeeID}
		}),
		Projects: mapOptions(r.projects, func(p models.Project) Option[string] {
			return Option[string]{
				Label: p.ProjectName,
				Value: p.Code,
				Meta: map[string]any{
					"project_leader_id":   p.ProjectLeaderID,
					"project_leader_name": p.ProjectLeaderName,
				},
			}
		}),
		ProjectGroups: mapOptions(r.projectGroups, func(p models.ProjectGroup) Option[string] {
			return Option[string]{
				Label: p.GroupName,
				Value: p.Code,
				Meta:  map[string]any{"group_leader_id": p.GroupLeaderID},
			}
		}),
		Ships: mapOptions(r.vessels, func(v models.Vessel) Option[string] {
			meta := make(map[string]any, len(v))
			for k, val := range v {
				if k != "cnName" && k != "code" {
					meta[k] = val
				}
			}
			return Option[string]{Label: v.String("cnName"), Value: v.String("code"), Meta: meta}
		}),
		Ports: mapOptions(r.ports, func(p models.Port) Option[string] {
			return Option[string]{Label: p.PortCnName, Value: p.Code}
		}),
		GoodsTypes: mapOptions(r.goods, func(g models.Goods) Option[string] {
			return Option[string]{Label: g.GoodsCnName, Value: g.GoodsCode}
		}),
		Orgs: mapOptions(r.orgs, func(o models.Org) Option[string] {
			return Option[string]{Label: o.OrgName, Value: o.OrgCode}
		}),
		Currencies: mapOptions(r.currencies, func(c models.Currency) Option[string] {
			return Option[string]{Label: c.CnName, Value: c.CurrencyCode, Disabled: disabled(c.IsEnable)}
		}),
		CategoryWithSubjectTree: r.categoryTree,
		VoyageNos: mapOptions(r.voyageNos, func(v models.VoyageNoConfig) Option[string] {
			return Option[string]{Label: v.VoyageNo, Value: v.VoyageCode, Meta: map[string]any{"vessel_code": v.VesselCode}}
		}),
		Subjects: SubjectOptions(r.subjects),
		ExpenseCategories: mapOptions(r.categories, func(c models.Category) Option[string] {
			return Option[string]{Label: c.CnName, Value: c.CategoryCode}
		}),
		ExternalVoyageNos: mapOptions(r.extVoyageNos, func(v models.VoyageNoConfigExt) Option[string] {
			return Option[string]{Label: v.ExternalVoyageNo, Value: v.ExtVoyageCode}
		}),
		Countries: mapOptions(r.countries, func(c models.Country) Option[string] {
			return Option[string]{Label: c.CountryCnName, Value: c.Code}
		}),
	}
	if b.CategoryWithSubjectTree == nil {
		b.CategoryWithSubjectTree = []models.TreeNode{}
	}
	return b
}
