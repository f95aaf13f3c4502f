package model

// Master-data lookup tables. Plain reference rows filtered to status 'A'.

// VisitorCategory is one row of visitor_category_master
type VisitorCategory struct {
	BaseModel
	CategoryName string `gorm:"column:category_name;type:varchar(64);uniqueIndex;not null" json:"category_name"`
	Status       string `gorm:"column:status;type:varchar(1);not null;default:'A'" json:"status"`
}

// TableName specifies the table name for VisitorCategory model
func (VisitorCategory) TableName() string {
	return "visitor_category_master"
}

// Purpose is one row of purpose_master
type Purpose struct {
	BaseModel
	PurposeName string `gorm:"column:purpose_name;type:varchar(64);uniqueIndex;not null" json:"purpose_name"`
	Status      string `gorm:"column:status;type:varchar(1);not null;default:'A'" json:"status"`
}

// TableName specifies the table name for Purpose model
func (Purpose) TableName() string {
	return "purpose_master"
}

// IDType is one row of id_master
type IDType struct {
	BaseModel
	IDTypeName string `gorm:"column:id_type_name;type:varchar(64);uniqueIndex;not null" json:"id_type_name"`
	Status     string `gorm:"column:status;type:varchar(1);not null;default:'A'" json:"status"`
}

// TableName specifies the table name for IDType model
func (IDType) TableName() string {
	return "id_master"
}
