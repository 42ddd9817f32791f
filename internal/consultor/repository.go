package consultor

import (
	"gorm.io/gorm"
)

// TamanhoLote é quantos registros vão em cada INSERT da importação.
const TamanhoLote = 100

type Repository interface {
	Listar(db *gorm.DB, f Filtro) ([]Consultor, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	BuscarPorID(db *gorm.DB, id uint) (*Consultor, error)
	Atualizar(db *gorm.DB, id uint, campos map[string]interface{}) (int64, error)
	InserirLote(db *gorm.DB, consultores []Consultor) error
	RemoverTodos(db *gorm.DB) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro) ([]Consultor, error) {
	consultores := []Consultor{}
	err := f.Aplicar(db.Model(&Consultor{})).Find(&consultores).Error
	return consultores, err
}

// consultaContagem monta a consulta sem a ordenação do filtro; COUNT com ORDER BY falha no postgres.
func consultaContagem(db *gorm.DB, f Filtro) *gorm.DB {
	f.OrdenarPor = ""
	return f.Aplicar(db.Model(&Consultor{}))
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := consultaContagem(db, f).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Consultor, error) {
	var c Consultor
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar grava só as colunas do mapa na linha id e devolve quantas linhas foram afetadas.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, campos map[string]interface{}) (int64, error) {
	res := db.Model(&Consultor{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *repositoryImpl) InserirLote(db *gorm.DB, consultores []Consultor) error {
	if len(consultores) == 0 {
		return nil
	}
	return db.Create(&consultores).Error
}

func (r *repositoryImpl) RemoverTodos(db *gorm.DB) (int64, error) {
	res := db.Where("id <> ?", 0).Delete(&Consultor{})
	return res.RowsAffected, res.Error
}
