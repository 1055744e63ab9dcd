package domain

// Shift — непрерывный рабочий промежуток внутри одного календарного дня.
// Время локальное, в формате "HH:MM"; для строк с ведущими нулями
// лексикографическое сравнение совпадает с хронологическим.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Schedule — расписание смен по датам. Ключ — дата в формате YYYY-MM-DD.
// День без ключа считается выходным.
type Schedule map[string][]Shift
