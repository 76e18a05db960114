package entities

// Role representa o papel de um usuário no portal
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RolePhotoUpdater Role = "photo_updater"
)

// ManagerRoles são os papéis aceitos nas rotas de gestão
var ManagerRoles = []Role{RoleManager, RoleAdmin}

// UpdaterRoles são os papéis aceitos nas rotas de fotos
var UpdaterRoles = []Role{RolePhotoUpdater, RoleAdmin}

// AdminRoles são os papéis aceitos no portal administrativo
var AdminRoles = []Role{RoleAdmin}

// Valid verifica se o role pertence ao conjunto declarado
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RolePhotoUpdater:
		return true
	}
	return false
}

// IsAdmin verifica se o role é administrador
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
