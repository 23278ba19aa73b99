package domain

// User сотрудник из статической таблицы
type User struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// DefaultUsers встроенная mock-таблица сотрудников
func DefaultUsers() []User {
	return []User{
		{EmployeeID: "EMP001", Name: "Ganesh"},
		{EmployeeID: "EMP002", Name: "Pratiksha"},
		{EmployeeID: "EMP003", Name: "Stef"},
	}
}
