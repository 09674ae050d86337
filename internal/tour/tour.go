// Package tour is the ordered catalogue of lessons that make up the primer.
package tour

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"

	"go.uber.org/zap"

	"github.com/roach88/primer/internal/basics"
	"github.com/roach88/primer/internal/collections"
	"github.com/roach88/primer/internal/fault"
	"github.com/roach88/primer/internal/fileio"
	"github.com/roach88/primer/internal/funcs"
	"github.com/roach88/primer/internal/lesson"
	"github.com/roach88/primer/internal/pattern"
	"github.com/roach88/primer/internal/serial"
	"github.com/roach88/primer/internal/store"
	"github.com/roach88/primer/internal/vehicle"
	"github.com/roach88/primer/internal/webform"
)

// Catalogue returns every lesson in tour order.
func Catalogue() []lesson.Lesson {
	return []lesson.Lesson{
		{Name: "syntax", Title: "Basic Syntax", Run: syntax},
		{Name: "conditionals", Title: "Conditional Statements", Run: conditionals},
		{Name: "loops", Title: "Loops", Run: loops},
		{Name: "functions", Title: "Functions", Run: functions},
		{Name: "arrays", Title: "Arrays", Run: arrays},
		{Name: "types", Title: "Types and Interfaces", Run: types},
		{Name: "files", Title: "File Handling", Run: files},
		{Name: "errors", Title: "Error Handling", Run: errorHandling},
		{Name: "json", Title: "JSON", Run: jsonLesson},
		{Name: "regex", Title: "Regular Expressions", Run: regex},
		{Name: "database", Title: "Database Connection", Run: database},
		{Name: "forms", Title: "Web Forms", Run: forms},
	}
}

const multiLine = `This is a
multi-line string.`

func syntax(_ context.Context, env *lesson.Env) error {
	env.Println("Hello, World!")
	env.Println("Welcome to Go Programming!")

	t := env.Config.Tour
	p := basics.Profile{Name: t.Name, Age: t.Age, Height: t.Height, Student: t.Student}
	env.Println(basics.Introduce(p))
	env.Println(basics.StudentStatus(p))

	env.Println(multiLine)
	env.Printf("The value of PI is %v\n", basics.Pi)
	return nil
}

func conditionals(_ context.Context, env *lesson.Env) error {
	t := env.Config.Tour
	env.Println(basics.AgeStatus(t.Age))
	env.Println(basics.GradeMessage(t.Grade))
	if msg, ok := basics.NestedStatus(t.Age); ok {
		env.Println(msg)
	}
	env.Println(basics.AgeLabel(t.Age))
	return nil
}

func loops(_ context.Context, env *lesson.Env) error {
	env.Lines(basics.Iterations(5))
	env.Lines(basics.CountUp(3))
	env.Lines(basics.Countdown(5))
	basics.Each(env.Config.Tour.Fruits, func(_ int, fruit string) {
		env.Println(fruit)
	})
	return nil
}

func functions(_ context.Context, env *lesson.Env) error {
	env.Println(funcs.Greet(env.Config.Tour.Greet))
	env.Printf("The sum of 3 and 5 is %d\n", funcs.Sum(3, 5))
	env.Printf("Factorial of 5 is %d\n", funcs.Factorial(5))
	return nil
}

func arrays(_ context.Context, env *lesson.Env) error {
	t := env.Config.Tour
	colors := collections.Append(t.Colors, "Yellow")

	person := collections.Person{"name": t.Name, "age": t.Age, "gender": "Male"}
	name, _ := person.Get("name")
	age, _ := person.Get("age")
	env.Printf("Name: %v, Age: %v\n", name, age)

	matrix := collections.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if center, ok := matrix.Center(); ok {
		env.Printf("Matrix center: %d\n", center)
	}

	env.Printf("%s", collections.Dump(collections.SortStrings(colors)))
	return nil
}

func types(_ context.Context, env *lesson.Env) error {
	cars := []vehicle.Describer{
		vehicle.Car{Brand: "Toyota", Model: "Corolla"},
		vehicle.NewElectricCar("Tesla", "Model S", 100),
	}
	for _, c := range cars {
		env.Println(c.Describe())
	}

	for _, v := range []vehicle.Vehicle{vehicle.Bike{}, &vehicle.Scooter{}} {
		env.Lines(vehicle.Ride(v))
	}
	return nil
}

func files(_ context.Context, env *lesson.Env) error {
	path := filepath.Join(env.Config.WorkDir, fileio.SampleName)
	env.Logger.Debug("writing sample file", zap.String("path", path))

	if err := fileio.WriteLine(path, fileio.SampleLine); err != nil {
		return err
	}

	lines, err := fileio.ReadLines(path)
	if err != nil {
		return err
	}
	env.Lines(lines)

	ok, err := fileio.Exists(path)
	if err != nil {
		return err
	}
	if ok {
		env.Println("File exists.")
	}
	return nil
}

// quotient divides without a zero check, so b == 0 panics.
func quotient(a, b int) int {
	return a / b
}

func errorHandling(_ context.Context, env *lesson.Env) error {
	divisor := 0
	fault.Try(
		func() error {
			env.Printf("Result: %d\n", quotient(10, divisor))
			return nil
		},
		func(err error) {
			if errors.Is(err, fault.ErrDivisionByZero) {
				env.Println("Error: Division by zero.")
				return
			}
			env.Printf("Error: %v\n", err)
		},
		func() {
			env.Println("This block always executes.")
		},
	)

	scope := fault.NewScope(func(code int, msg string) {
		env.Logger.Warn("undefined value", zap.Int("code", code), zap.String("message", msg))
		env.Printf("Error [%d]: %s\n", code, msg)
	})
	scope.Set("name", env.Config.Tour.Name)
	if v, ok := scope.Lookup("undefinedVariable"); ok {
		env.Println(v)
	}
	return nil
}

func jsonLesson(_ context.Context, env *lesson.Env) error {
	data := map[string]any{"name": "Alice", "age": 30}

	encoded, err := serial.Encode(data)
	if err != nil {
		return err
	}
	env.Println(string(encoded))

	decoded, err := serial.Decode(encoded)
	if err != nil {
		return err
	}
	env.Printf("%s", collections.Dump(decoded))

	want, err := serial.Normalize(data)
	if err != nil {
		return err
	}
	env.Printf("Round trip preserved: %t\n", reflect.DeepEqual(want, any(decoded)))
	return nil
}

func regex(_ context.Context, env *lesson.Env) error {
	for _, text := range []string{"Hello, World!", "Goodbye, World!"} {
		if pattern.MatchHello(text) {
			env.Println("Pattern matched!")
		} else {
			env.Printf("%q does not match.\n", text)
		}
	}
	return nil
}

func database(ctx context.Context, env *lesson.Env) error {
	cfg := env.Config
	dialer := store.Dialer{Dir: cfg.DatabaseDir(), Driver: cfg.Database.Driver}
	creds := store.Credentials{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
	}
	env.Logger.Debug("connecting", zap.Stringer("database", creds), zap.String("driver", cfg.Database.Driver))

	if err := listUsers(ctx, env, dialer, creds); err != nil {
		return err
	}

	conn, err := dialer.Connect(ctx, creds)
	if err != nil {
		return err
	}
	defer conn.Close()

	id, err := conn.InsertUser(ctx, "John Doe", "john@example.com")
	if err != nil {
		return err
	}
	env.Printf("Inserted user %d.\n", id)

	users, err := conn.Users(ctx)
	if err != nil {
		return err
	}
	printUsers(env, users)
	return nil
}

func listUsers(ctx context.Context, env *lesson.Env, dialer store.Dialer, creds store.Credentials) error {
	conn, err := dialer.Connect(ctx, creds)
	if err != nil {
		return err
	}
	defer conn.Close()

	users, err := conn.Users(ctx)
	if err != nil {
		return err
	}
	printUsers(env, users)
	return nil
}

func printUsers(env *lesson.Env, users []store.User) {
	if len(users) == 0 {
		env.Println("No users found.")
		return
	}
	for _, u := range users {
		env.Printf("User: %s, Email: %s\n", u.Name, u.Email)
	}
}

func forms(_ context.Context, env *lesson.Env) error {
	fields := map[string]string{webform.Field: env.Config.Tour.Name}
	msg, err := webform.Echo(fields)
	if err != nil {
		return fmt.Errorf("echo form: %w", err)
	}
	env.Println(msg)
	env.Println("Run `primer serve` to try the form in a browser.")
	return nil
}
