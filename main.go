package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tuannh982/dictset/dictset"
)

const (
	opUnion               = "union"
	opIntersection        = "intersection"
	opDifference          = "difference"
	opSymmetricDifference = "symmetric-difference"
	opEqual               = "equal"
	opSubset              = "subset"
	opSuperset            = "superset"
	opShow                = "show"
)

var (
	app     = kingpin.New("dictset", "Evaluate dict-of-sets algebra over compact notation, e.g. a123b45.")
	verbose = app.Flag("verbose", "Log every step.").Short('v').Envar("DICTSET_VERBOSE").Bool()
	op      = app.Arg("op", "Operation to run.").Required().Enum(
		opUnion, opIntersection, opDifference, opSymmetricDifference,
		opEqual, opSubset, opSuperset, opShow,
	)
	left  = app.Arg("left", "Left operand.").Required().String()
	right = app.Arg("right", "Right operand.").Default("").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logger := newLogger(*op, *verbose)
	out, err := run(logger, *op, *left, *right)
	app.FatalIfError(err, "%s", *op)
	fmt.Println(out)
}

func newLogger(op string, verbose bool) *log.Entry {
	logger := log.WithFields(log.Fields{"op": op})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetOutput(os.Stderr)
	logger.Logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.Logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(logger *log.Entry, op, leftNotation, rightNotation string) (string, error) {
	a, err := dictset.Parse(leftNotation)
	if err != nil {
		return "", err
	}
	b, err := dictset.Parse(rightNotation)
	if err != nil {
		return "", err
	}
	logger.Debug("operands parsed ", "left=", a, " right=", b)
	var result *dictset.DictSet[string, string]
	switch op {
	case opShow:
		result = a
	case opUnion:
		result, err = a.Union(b)
	case opIntersection:
		result, err = a.Intersection(b)
	case opDifference:
		result, err = a.Difference(b)
	case opSymmetricDifference:
		result, err = a.SymmetricDifference(b)
	case opEqual:
		return fmt.Sprint(a.Equal(b)), nil
	case opSubset:
		ok, err := a.IsSubset(b)
		return fmt.Sprint(ok), err
	case opSuperset:
		ok, err := a.IsSuperset(b)
		return fmt.Sprint(ok), err
	default:
		return "", errors.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return "", err
	}
	logger.Debug("result ", result, " effective keys=", result.Len())
	return dictset.Format(result), nil
}
