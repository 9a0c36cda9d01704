package controller

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"practice-cli/models"
	"practice-cli/utils"
	"practice-cli/views"
)

type menuOption int

const (
	optQuit menuOption = iota
	optAdd
	optListAll
	optPrintOne
	optRemove
)

// DepartmentsController runs the departments REPL over an in-memory
// directory. Nothing outlives the session.
type DepartmentsController struct {
	console *views.Console
	company string
	dir     *models.Directory
}

// NewDepartmentsController creates the REPL, pre-loading any seeded
// departments from cfg.
func NewDepartmentsController(cfg utils.DepartmentsConfig, console *views.Console) *DepartmentsController {
	dir := models.NewDirectory()

	depts := make([]string, 0, len(cfg.Seed))
	for d := range cfg.Seed {
		depts = append(depts, d)
	}
	sort.Strings(depts)
	for _, d := range depts {
		for _, name := range cfg.Seed[d] {
			dir.Add(strings.TrimSpace(name), strings.TrimSpace(d))
		}
	}
	if dir.Len() > 0 {
		utils.L().Info("departments seeded  count=%d", dir.Len())
	}

	return &DepartmentsController{console: console, company: cfg.Company, dir: dir}
}

// Directory exposes the backing directory.
func (dc *DepartmentsController) Directory() *models.Directory {
	return dc.dir
}

func (dc *DepartmentsController) Run(ctx context.Context) error {
	dc.console.Println(views.Welcome(dc.company))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := dc.step()
		if errors.Is(err, errQuit) || errors.Is(err, utils.ErrEndOfInput) {
			dc.console.Println(views.Goodbye)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errQuit = errors.New("quit")

// step runs one menu iteration.
func (dc *DepartmentsController) step() error {
	line, err := dc.console.Prompt(views.Menu()...)
	if err != nil {
		return err
	}

	opt, err := parseOption(line)
	if err != nil {
		utils.L().Debug("menu input rejected: %v", err)
		dc.console.Println(views.InvalidOption)
		return nil
	}

	switch opt {
	case optQuit:
		return errQuit
	case optAdd:
		return dc.add()
	case optListAll:
		dc.listAll()
		return nil
	case optPrintOne:
		return dc.printOne()
	case optRemove:
		return dc.remove()
	}
	return nil
}

func (dc *DepartmentsController) add() error {
	line, err := dc.console.Prompt(views.EmployeePrompt)
	if err != nil {
		return err
	}
	name, dept, err := parseEmployee(line)
	if err != nil {
		utils.L().Debug("employee input rejected: %v", err)
		dc.console.Println(views.InvalidEmployee)
		return nil
	}
	dc.dir.Add(name, dept)
	utils.L().Info("employee added  name=%q dept=%q", name, dept)
	return nil
}

func (dc *DepartmentsController) listAll() {
	for _, dept := range dc.dir.Departments() {
		dc.console.Println(views.Banner(dept))
		dc.console.Lines(dc.dir.SortedEmployees(dept)...)
	}
}

func (dc *DepartmentsController) printOne() error {
	line, err := dc.console.Prompt(views.DepartmentPrompt)
	if err != nil {
		return err
	}
	if names, ok := dc.dir.Employees(strings.TrimSpace(line)); ok {
		dc.console.Lines(names...)
	}
	return nil
}

func (dc *DepartmentsController) remove() error {
	line, err := dc.console.Prompt(views.EmployeePrompt)
	if err != nil {
		return err
	}
	name, dept, err := parseEmployee(line)
	if err != nil {
		utils.L().Debug("employee input rejected: %v", err)
		dc.console.Println(views.InvalidEmployee)
		return nil
	}
	if dc.dir.Remove(name, dept) {
		utils.L().Info("employee removed  name=%q dept=%q", name, dept)
	}
	return nil
}

// parseOption maps a menu answer to an operation. Only "q" and 1-4 are
// accepted.
func parseOption(line string) (menuOption, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if s == views.QuitSentinel {
			return optQuit, nil
		}
		return 0, utils.ParseErrorf(line, "not a menu option")
	}
	if n < uint64(optAdd) || n > uint64(optRemove) {
		return 0, utils.ParseErrorf(line, "option %d out of range", n)
	}
	return menuOption(n), nil
}

// parseEmployee splits "<name> <department>" on the first whitespace run.
// The department keeps any inner spaces.
func parseEmployee(line string) (name, dept string, err error) {
	s := strings.TrimSpace(line)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", "", utils.ParseErrorf(line, "expected a name and a department")
	}
	name, dept = s[:i], strings.TrimSpace(s[i:])
	if dept == "" {
		return "", "", utils.ParseErrorf(line, "missing department")
	}
	return name, dept, nil
}
