package seed

import (
	"learnplatform/internal/domain"

	"gorm.io/datatypes"
)

// Стартовый Python-курс. Уроки досеваются в БД при первом чтении курса,
// недостающие номера добавляются без перезаписи существующих.

const PythonCourseID = "python"

type quizSeed struct {
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
	Difficulty   string
}

type lessonSeed struct {
	LessonNumber   int
	Title          string
	Description    string
	Content        string
	CodeExample    string
	Exercise       string
	ExpectedOutput string
	Quiz           []quizSeed
}

// PythonLessons возвращает уроки стартового курса (без ID — их назначает
// вызывающий при вставке).
func PythonLessons() []domain.Lesson {
	lessons := make([]domain.Lesson, 0, len(pythonCourse))
	for _, s := range pythonCourse {
		lessons = append(lessons, domain.Lesson{
			CourseID:       PythonCourseID,
			LessonNumber:   s.LessonNumber,
			Title:          s.Title,
			Description:    s.Description,
			Content:        s.Content,
			CodeExample:    s.CodeExample,
			Exercise:       s.Exercise,
			ExpectedOutput: s.ExpectedOutput,
		})
	}
	return lessons
}

// PythonQuiz возвращает вопросы викторины для номера урока.
func PythonQuiz(lessonNumber int) []domain.QuizQuestion {
	for _, s := range pythonCourse {
		if s.LessonNumber != lessonNumber {
			continue
		}
		questions := make([]domain.QuizQuestion, 0, len(s.Quiz))
		for i, q := range s.Quiz {
			questions = append(questions, domain.QuizQuestion{
				OrderIndex:   i,
				Question:     q.Question,
				Options:      datatypes.NewJSONSlice(q.Options),
				CorrectIndex: q.CorrectIndex,
				Explanation:  q.Explanation,
				Difficulty:   q.Difficulty,
			})
		}
		return questions
	}
	return nil
}

var pythonCourse = []lessonSeed{
	{
		LessonNumber: 1,
		Title:        "Getting Started with Python",
		Description:  "Install Python, run your first program, and understand how Python executes code.",
		Content: "Python is a beginner-friendly programming language used for web development, automation, data science, and AI.\n\n" +
			"Your first Python program:\nprint('Hello, world!')",
		CodeExample:    "print('Hello, world!')",
		Exercise:       "Write a program that prints: Welcome to CodingLabs",
		ExpectedOutput: "Welcome to CodingLabs",
		Quiz: []quizSeed{
			{
				Question:     "Python is mainly used to ____ to computers.",
				Options:      []string{"draw icons only", "give instructions", "repair hardware", "design networks only"},
				CorrectIndex: 1,
				Explanation:  "Correct. Python is a language used to give instructions to a computer.",
				Difficulty:   "Easy",
			},
			{
				Question:     "Which line correctly prints text in Python?",
				Options:      []string{`echo("Hello")`, `print("Hello")`, `show("Hello")`, `output("Hello")`},
				CorrectIndex: 1,
				Explanation:  "Correct. print() is the standard way to show output on screen.",
				Difficulty:   "Medium",
			},
			{
				Question:     "Which option is NOT a common use of Python?",
				Options:      []string{"Data analysis", "Automation scripts", "Web development", "Physical keyboard repair"},
				CorrectIndex: 3,
				Explanation:  "Correct. Python can automate software tasks, not physically repair hardware.",
				Difficulty:   "Hard",
			},
		},
	},
	{
		LessonNumber: 2,
		Title:        "Variables and Data Types",
		Description:  "Learn how to store values in variables and work with common data types.",
		Content: "Python supports numbers, strings, booleans, lists, and more.\n\n" +
			"Examples:\nname = \"Rahul\"\nage = 21\nis_student = True",
		CodeExample:    "name = \"Rahul\"\nage = 21\nis_student = True\nprint(name, age, is_student)",
		Exercise:       "Create variables city, temperature, and is_raining, then print them.",
		ExpectedOutput: "Your values printed in one line",
		Quiz: []quizSeed{
			{
				Question:     "A variable is best described as:",
				Options:      []string{"A fixed value forever", "A named storage for data", "A Python file type", "A loop condition"},
				CorrectIndex: 1,
				Explanation:  "Correct. Variables store data with a readable name.",
				Difficulty:   "Easy",
			},
			{
				Question:     "Which assignment is valid in Python?",
				Options:      []string{"score == 10", "score := 10", "score = 10", "int score = 10"},
				CorrectIndex: 2,
				Explanation:  "Correct. = assigns a value; == compares two values.",
				Difficulty:   "Medium",
			},
			{
				Question:     "Which statement is NOT correct?",
				Options:      []string{"Strings are written with quotes", "Booleans are True/False", "Python variable types never change", "Integers store whole numbers"},
				CorrectIndex: 2,
				Explanation:  "Correct. Python variables are dynamically typed and can hold different types over time.",
				Difficulty:   "Hard",
			},
		},
	},
	{
		LessonNumber: 3,
		Title:        "Input and Output",
		Description:  "Take input from the user and display formatted output.",
		Content:      "Use input() to read text from the user. Convert numeric input using int() or float().",
		CodeExample:  "name = input(\"Enter your name: \")\nprint(\"Hello,\", name)",
		Exercise:     "Ask for user age and print: You are <age> years old.",
		ExpectedOutput: "You are 18 years old",
		Quiz: []quizSeed{
			{
				Question:     "By default, input() returns:",
				Options:      []string{"int", "float", "str", "bool"},
				CorrectIndex: 2,
				Explanation:  "Correct. input() returns text (string) unless you convert it.",
				Difficulty:   "Easy",
			},
			{
				Question:     "Which code converts user input age to an integer?",
				Options:      []string{"age = number(input())", "age = int(input())", "age = input(int)", "age = str(input())"},
				CorrectIndex: 1,
				Explanation:  "Correct. Wrap input() with int() to convert numeric text.",
				Difficulty:   "Medium",
			},
			{
				Question:     "Which output statement is the cleanest modern style?",
				Options:      []string{`print("Name:" + name)`, `print("Name:", name)`, `print(f"Name: {name}")`, "All are valid output styles"},
				CorrectIndex: 3,
				Explanation:  "Correct. All work; f-strings are often most readable for formatting.",
				Difficulty:   "Hard",
			},
		},
	},
	{
		LessonNumber: 4,
		Title:        "Conditions (if, elif, else)",
		Description:  "Run different code blocks based on conditions.",
		Content: "Conditional statements help make decisions.\n\n" +
			"if score >= 90:\n    print(\"A\")\nelif score >= 75:\n    print(\"B\")\nelse:\n    print(\"C\")",
		CodeExample:    "num = 7\nif num % 2 == 0:\n    print(\"Even\")\nelse:\n    print(\"Odd\")",
		Exercise:       "Check whether a number is positive, negative, or zero.",
		ExpectedOutput: "Positive",
		Quiz: []quizSeed{
			{
				Question:     "Which keyword starts a conditional block in Python?",
				Options:      []string{"when", "if", "case", "cond"},
				CorrectIndex: 1,
				Explanation:  "Correct. Conditions start with if, optionally followed by elif and else.",
				Difficulty:   "Easy",
			},
			{
				Question:     "What does elif mean?",
				Options:      []string{"end of loop", "else if", "error lift", "element if"},
				CorrectIndex: 1,
				Explanation:  "Correct. elif checks another condition when the previous ones were false.",
				Difficulty:   "Medium",
			},
			{
				Question:     "Which comparison checks equality?",
				Options:      []string{"=", "==", ":=", "equals"},
				CorrectIndex: 1,
				Explanation:  "Correct. == compares two values; = assigns.",
				Difficulty:   "Hard",
			},
		},
	},
	{
		LessonNumber: 5,
		Title:        "Loops (for and while)",
		Description:  "Repeat tasks efficiently using loops.",
		Content:      "for loops are great for known ranges; while loops run while a condition is true.",
		CodeExample:  "for i in range(1, 6):\n    print(i)",
		Exercise:     "Print numbers from 10 to 1 using a while loop.",
		ExpectedOutput: "10 9 8 7 6 5 4 3 2 1",
		Quiz: []quizSeed{
			{
				Question:     "Which loop is best for iterating over a known range?",
				Options:      []string{"while", "for", "until", "repeat"},
				CorrectIndex: 1,
				Explanation:  "Correct. for with range() iterates over a known sequence.",
				Difficulty:   "Easy",
			},
			{
				Question:     "range(1, 6) produces:",
				Options:      []string{"1..6 inclusive", "1..5 inclusive", "0..5 inclusive", "2..6 inclusive"},
				CorrectIndex: 1,
				Explanation:  "Correct. The end of range() is exclusive.",
				Difficulty:   "Medium",
			},
			{
				Question:     "What stops an infinite while loop from inside?",
				Options:      []string{"stop", "exit loop", "break", "halt"},
				CorrectIndex: 2,
				Explanation:  "Correct. break leaves the innermost loop immediately.",
				Difficulty:   "Hard",
			},
		},
	},
	{
		LessonNumber: 6,
		Title:        "Functions",
		Description:  "Group reusable logic into functions with parameters and return values.",
		Content: "Functions help you write cleaner and reusable code.\n\n" +
			"Use def to define a function.",
		CodeExample:    "def add(a, b):\n    return a + b\n\nprint(add(3, 4))",
		Exercise:       "Write a function square(n) that returns n*n.",
		ExpectedOutput: "square(5) => 25",
		Quiz: []quizSeed{
			{
				Question:     "Which keyword defines a function?",
				Options:      []string{"func", "def", "function", "lambda only"},
				CorrectIndex: 1,
				Explanation:  "Correct. def starts a function definition.",
				Difficulty:   "Easy",
			},
			{
				Question:     "What does return do?",
				Options:      []string{"prints a value", "ends the program", "hands a value back to the caller", "restarts the function"},
				CorrectIndex: 2,
				Explanation:  "Correct. return passes the result back and exits the function.",
				Difficulty:   "Medium",
			},
			{
				Question:     "A function without return returns:",
				Options:      []string{"0", "the last expression", "None", "an empty string"},
				CorrectIndex: 2,
				Explanation:  "Correct. Missing return means the function yields None.",
				Difficulty:   "Hard",
			},
		},
	},
}
