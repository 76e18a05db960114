package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Username     string  `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName    string  `gorm:"type:varchar(150)"`
	LastName     string  `gorm:"type:varchar(150)"`
	Phone        string  `gorm:"type:varchar(20)"`
	AvatarURL    *string `gorm:"type:varchar(500)"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(20);not null;index"`
	Locale       string  `gorm:"type:varchar(5);not null"`
	AutoLogout   int     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserSettingsModel é o model GORM para preferências de usuário
type UserSettingsModel struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             string `gorm:"type:uuid;uniqueIndex;not null"`
	Theme              string `gorm:"type:varchar(10);not null"`
	EmailNotifications bool   `gorm:"not null"`
	ImageMaxWidth      int    `gorm:"not null"`
	ImageMaxHeight     int    `gorm:"not null"`
	ImageQuality       int    `gorm:"not null"`
}

func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// CityModel é o model GORM para cidades
type CityModel struct {
	ID        uint      `gorm:"primaryKey"`
	Nom       string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CityModel) TableName() string {
	return "villes"
}

// DistrictModel é o model GORM para quartiers
type DistrictModel struct {
	ID        uint      `gorm:"primaryKey"`
	Nom       string    `gorm:"type:varchar(100);not null"`
	CityID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (DistrictModel) TableName() string {
	return "quartiers"
}

// PropertyTypeModel é o model GORM para tipos de imóvel
type PropertyTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Nom         string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:text"`
}

func (PropertyTypeModel) TableName() string {
	return "types_propriete"
}

// PropertyStatusModel é o model GORM para o conjunto fechado de status
type PropertyStatusModel struct {
	ID         uint   `gorm:"primaryKey"`
	Code       string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Nom        string `gorm:"type:varchar(50);not null"`
	Couleur    string `gorm:"type:varchar(7);not null"`
	IsTerminal bool   `gorm:"not null;index"`
}

func (PropertyStatusModel) TableName() string {
	return "status_propriete"
}

// PropertyModel é o model GORM para imóveis
type PropertyModel struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	Titre       string   `gorm:"type:varchar(200);not null"`
	Description string   `gorm:"type:text;not null"`
	Prix        int64    `gorm:"not null"`
	Superficie  float64  `gorm:"not null"`
	Chambres    int      `gorm:"not null"`
	SallesBain  int      `gorm:"not null"`
	Adresse     string   `gorm:"type:varchar(300)"`
	CityID      uint     `gorm:"not null;index"`
	DistrictID  uint     `gorm:"not null;index"`
	Latitude    *float64
	Longitude   *float64
	TypeID      uint      `gorm:"not null"`
	StatusID    uint      `gorm:"not null;index"`
	AgentID     string    `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PropertyModel) TableName() string {
	return "proprietes"
}

// PropertyImageModel é o model GORM para fotos de imóveis
type PropertyImageModel struct {
	ID         uint      `gorm:"primaryKey"`
	PropertyID string    `gorm:"type:uuid;not null;index"`
	ObjectKey  string    `gorm:"type:varchar(500);not null"`
	URL        string    `gorm:"type:varchar(500);not null"`
	Legende    string    `gorm:"type:varchar(200)"`
	IsMain     bool      `gorm:"not null;index"`
	UploadedAt time.Time `gorm:"autoCreateTime;index"`
}

func (PropertyImageModel) TableName() string {
	return "images_propriete"
}

// SaleModel é o model GORM para vendas
type SaleModel struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID string `gorm:"type:uuid;not null;index"`

	ClientNom       string `gorm:"type:varchar(200);not null"`
	ClientEmail     string `gorm:"type:varchar(255);not null"`
	ClientTelephone string `gorm:"type:varchar(20);not null"`
	ClientIdentite  string `gorm:"type:varchar(50)"`
	ClientAdresse   string `gorm:"type:text"`

	PrixVente            int64  `gorm:"not null"`
	FraisSupplementaires int64  `gorm:"not null"`
	Remise               int64  `gorm:"not null"`
	ModePaiement         string `gorm:"type:varchar(20);not null"`

	DateVente time.Time `gorm:"not null;index"`
	VendeurID string    `gorm:"type:uuid;not null;index"`
	Notes     string    `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (SaleModel) TableName() string {
	return "ventes"
}

// MessageModel é o model GORM para o mural interno
type MessageModel struct {
	ID         uint      `gorm:"primaryKey"`
	FromEmail  string    `gorm:"type:varchar(255);not null"`
	ToEmail    string    `gorm:"type:varchar(255);not null"`
	Subject    string    `gorm:"type:varchar(200);not null"`
	Body       string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"autoCreateTime;index"`
	IsRead     bool      `gorm:"not null"`
	IsFeedback bool      `gorm:"not null"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// AllModels retorna os models na ordem de migração
func AllModels() []any {
	return []any{
		&UserModel{},
		&UserSettingsModel{},
		&CityModel{},
		&DistrictModel{},
		&PropertyTypeModel{},
		&PropertyStatusModel{},
		&PropertyModel{},
		&PropertyImageModel{},
		&SaleModel{},
		&MessageModel{},
	}
}
