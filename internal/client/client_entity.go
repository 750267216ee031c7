package client

import "time"

// Client is a customer organisation. ClientType points at the project type
// whose code prefixes the client code.
type Client struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	ClientType     uint      `gorm:"column:client_type;not null;index"`
	ClientName     string    `gorm:"column:client_name;type:varchar(50);not null;uniqueIndex:uq_clients_client_name"`
	ClientCode     string    `gorm:"column:client_code;type:varchar(20);not null;uniqueIndex:uq_clients_client_code"`
	ClientEmail    string    `gorm:"column:client_email;type:varchar(100);not null"`
	ContactAddress string    `gorm:"column:contact_address;type:varchar(1000);not null"`
	ClientTel      string    `gorm:"column:client_tel;type:varchar(15);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Client) TableName() string { return "clients" }

// Row is a client joined with its project type name.
type Row struct {
	Client
	ProjectType string `gorm:"column:project_type"`
}
