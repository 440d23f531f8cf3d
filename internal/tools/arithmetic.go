package tools

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned when an expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

var (
	decimalIntRe   = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	decimalFloatRe = regexp.MustCompile(`^([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// EvalArithmetic evaluates expr using only number literals, the binary operators
// + - * /, unary + and -, and parentheses. Anything else (identifiers, calls,
// selectors, strings, other operators) is rejected before evaluation.
func EvalArithmetic(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, errors.New("empty expression")
	}

	if err := checkTokens(expr); err != nil {
		return 0, err
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, fmt.Errorf("invalid syntax: %w", err)
	}
	return evalNode(node)
}

// checkTokens rejects comments and any number that is not plain decimal
// (leading zeros, 0x/0o/0b prefixes, digit separators).
func checkTokens(expr string) error {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(expr))

	var s scanner.Scanner
	// Syntax errors are left to the parser.
	s.Init(file, []byte(expr), nil, scanner.ScanComments)
	for {
		_, tok, lit := s.Scan()
		switch tok {
		case token.EOF:
			return nil
		case token.COMMENT:
			return errors.New("comments are not allowed")
		case token.INT:
			if !decimalIntRe.MatchString(lit) {
				return fmt.Errorf("invalid number %q", lit)
			}
		case token.FLOAT:
			if !decimalFloatRe.MatchString(lit) {
				return fmt.Errorf("invalid number %q", lit)
			}
		}
	}
}

func evalNode(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		return evalLiteral(n)

	case *ast.ParenExpr:
		return evalNode(n.X)

	case *ast.UnaryExpr:
		x, err := evalNode(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return -x, nil
		}
		return 0, fmt.Errorf("unsupported operator %q", n.Op.String())

	case *ast.BinaryExpr:
		switch n.Op {
		case token.ADD, token.SUB, token.MUL, token.QUO:
		default:
			return 0, fmt.Errorf("unsupported operator %q", n.Op.String())
		}
		x, err := evalNode(n.X)
		if err != nil {
			return 0, err
		}
		y, err := evalNode(n.Y)
		if err != nil {
			return 0, err
		}
		return applyOperator(n.Op, x, y)

	case *ast.Ident:
		return 0, fmt.Errorf("name %q is not allowed", n.Name)

	default:
		return 0, fmt.Errorf("unsupported expression %T", node)
	}
}

func evalLiteral(lit *ast.BasicLit) (float64, error) {
	switch lit.Kind {
	case token.INT:
		v, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", lit.Value)
		}
		return float64(v), nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", lit.Value)
		}
		return v, nil
	}
	return 0, fmt.Errorf("unsupported literal %s", lit.Value)
}

func applyOperator(op token.Token, x, y float64) (float64, error) {
	var res float64
	switch op {
	case token.ADD:
		res = x + y
	case token.SUB:
		res = x - y
	case token.MUL:
		res = x * y
	case token.QUO:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		res = x / y
	}
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return 0, errors.New("result out of range")
	}
	return res, nil
}
