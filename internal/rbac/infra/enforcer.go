package infra

import (
	"fmt"

	"go-hrfine/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// NewEnforcer builds the role enforcer. With a policy file the policies come
// from that CSV; otherwise the built-in defaults are loaded.
func NewEnforcer(policyFile string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbac.ModelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	if policyFile != "" {
		e, err := casbin.NewEnforcer(m, fileadapter.NewAdapter(policyFile))
		if err != nil {
			return nil, fmt.Errorf("rbac policy file %s: %w", policyFile, err)
		}
		return e, nil
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(rbac.DefaultPolicies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(rbac.DefaultGroupings); err != nil {
		return nil, err
	}
	return e, nil
}
