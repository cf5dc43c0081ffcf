// Command enumerate is a thin CLI driver over
// [github.com/EwanGilligan/yatyat/froidurepin]: it builds a transformation
// semigroup from a set of image-vector generators given on the command
// line, enumerates it, and prints a summary.
//
// It is ambient tooling around the library, not part of the enumeration
// engine itself.
package main

import (
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/spf13/cobra"
    "golang.org/x/text/language"
    "golang.org/x/text/message"

    "github.com/EwanGilligan/yatyat/froidurepin"
    "github.com/EwanGilligan/yatyat/must"
    "github.com/EwanGilligan/yatyat/semigroup/transformation"
)

var (
    degree     int
    withID     bool
    generators []string
)

var rootCmd = &cobra.Command{
    Use:   "enumerate",
    Short: "Enumerate a transformation semigroup with the Froidure-Pin algorithm",
    Long: "enumerate builds a transformation semigroup from degree and a list of " +
        "image vectors (one flag per generator, comma-separated images) and prints " +
        "the size of the semigroup, the number of generators, and the rewrite rule count.",
    RunE: run,
}

func init() {
    rootCmd.Flags().IntVar(&degree, "degree", 0, "the number of points the transformations act on (required)")
    rootCmd.Flags().BoolVar(&withID, "identity", false, "treat the generated semigroup as a monoid with an identity")
    rootCmd.Flags().StringArrayVar(&generators, "gen", nil, "a generator's image vector, comma-separated (repeatable)")
    _ = rootCmd.MarkFlagRequired("degree")
}

func main() {
    if err := rootCmd.Execute(); err != nil {
        os.Exit(1)
    }
}

func run(cmd *cobra.Command, args []string) error {
    gens := make([]transformation.Transformation, 0, len(generators))
    for _, spec := range generators {
        images, err := parseImages(spec)
        if err != nil {
            return err
        }
        gens = append(gens, transformation.New(degree, images))
    }

    var sg transformation.Semigroup
    var err error
    if withID {
        sg, err = transformation.NewSemigroup(gens, transformation.Identity(degree))
    } else {
        sg, err = transformation.NewSemigroup(gens)
    }
    if err != nil {
        return err
    }

    // Enumerate's single abstract failure mode is a panicking
    // ConsistencyError; this is the one place in the repo that recovers it,
    // via must.CatchFunc, and turns it into an ordinary error.
    enumerate := func() froidurepin.Result[transformation.Transformation] {
        return froidurepin.Enumerate[transformation.Transformation](sg)
    }
    start := time.Now()
    result, err := must.CatchFunc(enumerate)()
    elapsed := time.Since(start)
    if err != nil {
        return err
    }

    runID := uuid.New()
    p := message.NewPrinter(language.English)
    p.Printf("run %s: %d generator(s), degree %d\n", runID, len(gens), degree)
    p.Printf("enumerated %d element(s) and %d rewrite rule(s) in %s\n",
        result.Len(), len(result.Rules()), elapsed)
    if !result.Complete() {
        p.Printf("enumeration was cancelled before completion\n")
    }

    return nil
}

func parseImages(spec string) ([]int, error) {
    parts := strings.Split(spec, ",")
    images := make([]int, len(parts))
    for i, part := range parts {
        n, err := strconv.Atoi(strings.TrimSpace(part))
        if err != nil {
            return nil, fmt.Errorf("enumerate: invalid image value %q in generator %q: %w", part, spec, err)
        }
        images[i] = n
    }
    return images, nil
}
