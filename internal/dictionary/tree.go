package dictionary

import (
	"charterdesk/internal/backend/models"
	"charterdesk/internal/format"
)

// Find searches the tree depth first in pre-order. On a match it returns
// value(node), or def when that is the zero value. A result from a subtree only
// counts when it differs from def, so the search carries on past matches that
// projected to nothing.
func Find[T comparable](nodes []models.TreeNode, match func(models.TreeNode) bool, value func(models.TreeNode) T, def T) T {
	var zero T
	for _, node := range nodes {
		if match(node) {
			if v := value(node); v != zero {
				return v
			}
			return def
		}
		if len(node.Children) > 0 {
			if found := Find(node.Children, match, value, def); found != def {
				return found
			}
		}
	}
	return def
}

// ExpenseSubjectName resolves a subject code in the category/subject tree.
func ExpenseSubjectName(code string, tree []models.TreeNode) string {
	if code == "" || len(tree) == 0 {
		return format.Placeholder
	}
	return Find(tree,
		func(n models.TreeNode) bool { return n.Code == code },
		func(n models.TreeNode) string { return n.CnName },
		format.Placeholder,
	)
}

// DeptName resolves a department id in an organization tree, matching either the
// node id or its deptId.
func DeptName(id models.ID, tree []models.TreeNode) string {
	if id == "" || id == "0" || len(tree) == 0 {
		return format.Placeholder
	}
	return Find(tree,
		func(n models.TreeNode) bool { return n.ID == id || n.DeptID == id },
		func(n models.TreeNode) string { return format.First(n.DeptName, n.OrgName) },
		format.Placeholder,
	)
}
