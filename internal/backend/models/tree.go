package models

// TreeNode covers the hierarchical lists returned by the backend: the expense
// category/subject tree (code, cnName) and organization trees (id, deptId,
// deptName, orgName).
type TreeNode struct {
	ID       ID         `json:"id,omitempty"`
	DeptID   ID         `json:"deptId,omitempty"`
	Code     string     `json:"code,omitempty"`
	CnName   string     `json:"cnName,omitempty"`
	DeptName string     `json:"deptName,omitempty"`
	OrgName  string     `json:"orgName,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}
