// Package authz описывает доступ ролей к маршрутам портала (casbin RBAC + keyMatch2).
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"portal/internal/entities"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

type rule struct {
	path    string
	methods string
}

var (
	allRoles = []entities.UserRole{
		entities.RoleSuperuser,
		entities.RoleMillAdmin,
		entities.RoleMillOperator,
		entities.RoleBakeryOwner,
		entities.RoleBakeryEmployee,
	}

	paymentRoles = []entities.UserRole{
		entities.RoleSuperuser,
		entities.RoleBakeryOwner,
		entities.RoleBakeryEmployee,
	}

	commonRules = []rule{
		{path: "/logout", methods: "^POST$"},
		{path: "/orders", methods: "^GET$"},
		{path: "/orders/new", methods: "^(GET|POST)$"},
		{path: "/orders/:id/edit", methods: "^(GET|PUT)$"},
		{path: "/tracking/:id", methods: "^(GET|DELETE)$"},
	}

	paymentRules = []rule{
		{path: "/payments/:id", methods: "^(GET|POST)$"},
	}
)

// Policies возвращает политику по умолчанию в формате (роль, маршрут, методы).
func Policies() [][]string {
	var policies [][]string
	for _, role := range allRoles {
		for _, r := range commonRules {
			policies = append(policies, []string{role.String(), r.path, r.methods})
		}
	}
	for _, role := range paymentRoles {
		for _, r := range paymentRules {
			policies = append(policies, []string{role.String(), r.path, r.methods})
		}
	}
	return policies
}

func NewEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(Policies()); err != nil {
		return nil, fmt.Errorf("load casbin policies: %w", err)
	}
	return enforcer, nil
}
