package entity

// User representa una cuenta del sistema. Cada recurso del inventario pertenece a un User.
// FirebaseUID se conserva en el esquema pero ningún flujo de request lo consume.
type User struct {
	ID           string // UUID
	Name         string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirebaseUID  string
}
