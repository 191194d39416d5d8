package usecase

import "strings"

// statusAccepted — строка статуса Judge0 для успешного запуска.
const statusAccepted = "Accepted"

func normalizeOutput(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, "\r\n", "\n"))
}

// EvaluateRun решает, засчитан ли запуск кода. Если у урока задан
// эталонный вывод — сравниваем строки после нормализации (CRLF -> LF,
// обрезка краевых пробелов), статус песочницы игнорируется. Иначе
// засчитываем только статус "Accepted".
func EvaluateRun(stdout, statusDescription, expectedOutput string) bool {
	expected := normalizeOutput(expectedOutput)
	if expected != "" {
		return normalizeOutput(stdout) == expected
	}
	return statusDescription == statusAccepted
}
