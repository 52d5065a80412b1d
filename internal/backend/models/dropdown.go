// Package models holds the backend DTOs consumed read-only by the BFF. Field names
// follow the backend's camelCase wire format.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a backend identifier that may arrive as a JSON number or string. It is
// normalized to its decimal string form so lookups compare like with like.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

type GuestBusiness struct {
	ID               int64  `json:"id"`
	Code             string `json:"code"`
	CustomerFullName string `json:"customerFullName"`
	// GuestRating 1-A1, 2-A2, 3-A3, 4-B, 5-blacklist.
	GuestRating *int `json:"guestRating"`
	IsEnable    *int `json:"isEnable"`
}

type Employee struct {
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

type Project struct {
	Code              string `json:"code"`
	ProjectName       string `json:"projectName"`
	ProjectLeaderID   *int64 `json:"projectLeaderId"`
	ProjectLeaderName string `json:"projectLeaderName"`
}

type ProjectGroup struct {
	Code          string `json:"code"`
	GroupName     string `json:"groupName"`
	GroupLeaderID *int64 `json:"groupLeaderId"`
}

// Vessel is kept open-ended: every field of the vessel record is carried onto the
// ship option.
type Vessel map[string]any

func (v Vessel) String(key string) string {
	s, _ := v[key].(string)
	return s
}

type Port struct {
	Code       string `json:"code"`
	PortCnName string `json:"portCnName"`
}

type Goods struct {
	GoodsCode   string `json:"goodsCode"`
	GoodsCnName string `json:"goodsCnName"`
}

type Org struct {
	OrgCode string `json:"orgCode"`
	OrgName string `json:"orgName"`
}

type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	CnName       string `json:"cnName"`
	IsEnable     *int   `json:"isEnable"`
}

type VoyageNoConfig struct {
	VoyageCode string `json:"voyageCode"`
	VoyageNo   string `json:"voyageNo"`
	VesselCode string `json:"vesselCode"`
}

type VoyageNoConfigExt struct {
	ExtVoyageCode    string `json:"extVoyageCode"`
	ExternalVoyageNo string `json:"externalVoyageNo"`
}

type Subject struct {
	Code   string `json:"code"`
	CnName string `json:"cnName"`
}

type Category struct {
	CategoryCode string `json:"categoryCode"`
	CnName       string `json:"cnName"`
}

type Country struct {
	Code          string `json:"code"`
	CountryCnName string `json:"countryCnName"`
}
