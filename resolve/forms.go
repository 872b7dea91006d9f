package resolve

import (
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

// buildImageURL implements spec §4.1's `@image-url` rule: resolve the path
// (absolute kept as-is; otherwise the type loader's import resolver;
// otherwise relative to the source file), and validate the optional
// nine-slice border arguments.
func buildImageURL(ctx *LookupContext, n *syntax.ImageURL, diags *diag.Builder) *element.Expression {
	resolved := n.Path
	if !filepath.IsAbs(n.Path) {
		if ctx.Loader != nil {
			if p, ok := ctx.Loader.ResolveImportPath(ctx.SourceFile, n.Path); ok {
				resolved = p
			} else {
				resolved = filepath.Join(filepath.Dir(ctx.SourceFile), n.Path)
			}
		} else {
			resolved = filepath.Join(filepath.Dir(ctx.SourceFile), n.Path)
		}
	}

	data := element.ImageRefData{ResolvedPath: resolved}
	switch len(n.NSlice) {
	case 0:
	case 1, 2, 4:
		data.NSliceCount = len(n.NSlice)
		copy(data.NSlice[:], n.NSlice)
	default:
		diags.Errorf(n.Location(), diag.MalformedConstruct,
			"@image-url nine-slice border takes 1, 2, or 4 values, got %d", len(n.NSlice))
		return element.Invalid()
	}
	return element.ImageRef(data)
}

// buildGradient implements spec §4.1's gradient rules and S3's stop
// interpolation: fill in missing positions (first defaults to 0, last to
// 1, interior gaps linearly interpolated); for conic gradients, normalize
// angle-unit positions to 0..1 by dividing by 360°.
func buildGradient(ctx *LookupContext, n *syntax.Gradient, diags *diag.Builder) *element.Expression {
	if len(n.Stops) == 0 {
		diags.Errorf(n.Location(), diag.MalformedConstruct, "gradient has no color stops")
		return element.Invalid()
	}

	var angle *element.Expression
	if n.Kind_ == syntax.LinearGradient {
		if n.Angle == nil {
			diags.Errorf(n.Location(), diag.MalformedConstruct, "@linear-gradient requires an angle")
			return element.Invalid()
		}
		angle = buildFromAST(ctx, n.Angle.AST(), n.Location(), diags)
	}

	stops := make([]element.GradientStop, len(n.Stops))
	for i, s := range n.Stops {
		color := buildFromAST(ctx, s.Color.AST(), n.Location(), diags)
		var pos float64
		switch {
		case s.Position != nil:
			pos = *s.Position
			if n.Kind_ == syntax.ConicGradient {
				pos /= 360
			}
		case i == 0:
			pos = 0
		case i == len(n.Stops)-1:
			pos = 1
		default:
			pos = -1 // filled in below once neighboring explicit positions are known
		}
		stops[i] = element.GradientStop{Color: color, Position: pos}
	}
	interpolateGaps(stops)

	return element.GradientExpr(element.GradientData{Kind: n.Kind_, Angle: angle, Stops: stops})
}

// interpolateGaps fills any stop left with a sentinel negative position by
// linearly interpolating between the nearest preceding and following stops
// that already have a concrete position (S3: red@0.0, green@0.5, blue@1.0
// for three evenly-spaced stops with no explicit positions).
func interpolateGaps(stops []element.GradientStop) {
	i := 0
	for i < len(stops) {
		if stops[i].Position >= 0 {
			i++
			continue
		}
		start := i - 1
		end := i
		for end < len(stops) && stops[end].Position < 0 {
			end++
		}
		lo, hi := stops[start].Position, stops[end].Position
		span := end - start
		for j := start + 1; j < end; j++ {
			frac := float64(j-start) / float64(span)
			stops[j].Position = lo + frac*(hi-lo)
		}
		i = end + 1
	}
}

var placeholderPattern = regexp.MustCompile(`\{([0-9]*n?)\}`)

// buildTrCall implements spec §4.1's `@tr` rule: parse placeholders,
// validate positional vs. non-positional forms aren't mixed, validate the
// placeholder count against the argument count, and lower to a call of the
// built-in Translate function.
func buildTrCall(ctx *LookupContext, n *syntax.TrCall, diags *diag.Builder) *element.Expression {
	matches := placeholderPattern.FindAllStringSubmatch(n.Format, -1)

	positional, bare, pluralCount := false, false, 0
	maxIndex := -1
	for _, m := range matches {
		token := m[1]
		switch {
		case token == "":
			bare = true
		case token == "n":
			pluralCount++
		default:
			positional = true
			if idx, err := strconv.Atoi(token); err == nil && idx > maxIndex {
				maxIndex = idx
			}
		}
	}
	if positional && bare {
		diags.Errorf(n.Location(), diag.MalformedConstruct, "@tr format mixes positional {N} and non-positional {} placeholders")
		return element.Invalid()
	}
	if pluralCount > 0 && n.Plural == nil {
		diags.Errorf(n.Location(), diag.MalformedConstruct, "@tr format uses {n} but no plural argument was given")
		return element.Invalid()
	}

	required := maxIndex + 1
	if !positional && bare {
		required = len(matches) - pluralCount
	}
	if required > len(n.Args) {
		diags.Errorf(n.Location(), diag.MalformedConstruct,
			"@tr format requires %d argument(s), got %d", required, len(n.Args))
		return element.Invalid()
	}

	args := make([]*element.Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = buildFromAST(ctx, a.AST(), n.Location(), diags)
	}
	var plural *element.Expression
	if n.Plural != nil {
		plural = buildFromAST(ctx, n.Plural.AST(), n.Location(), diags)
	}

	return element.TrCallExpr(element.TrCallData{Format: n.Format, Context: n.Context, Plural: plural, Args: args})
}

// buildStringTemplate implements spec §4.1's string-template rule: lower to
// a left-associative `+` chain of sub-expressions each coerced to String.
func buildStringTemplate(ctx *LookupContext, n *syntax.StringTemplate, diags *diag.Builder) *element.Expression {
	var result *element.Expression
	appendPart := func(e *element.Expression) {
		e = coerce(e, typesystem.String)
		if result == nil {
			result = e
			return
		}
		result = element.Arithmetic(typesystem.String, "+", result, e)
	}

	for i, lit := range n.Literals {
		if lit != "" {
			appendPart(element.Literal(typesystem.String, lit))
		}
		if i < len(n.Exprs) {
			appendPart(buildFromAST(ctx, n.Exprs[i].AST(), n.Location(), diags))
		}
	}
	if result == nil {
		return element.Literal(typesystem.String, "")
	}
	return result
}

// buildCodeBlock implements spec §4.1's "Code block typing": the block's
// type is the common target type of all exit points (the final expression
// if not a statement, plus every explicit return).
func buildCodeBlock(ctx *LookupContext, n *syntax.CodeBlock, diags *diag.Builder) *element.Expression {
	ctx.PushLocalScope()
	defer ctx.PopLocalScope()

	stmts := make([]*element.Expression, len(n.Statements))
	var exitTypes []*typesystem.Type
	for i, s := range n.Statements {
		stmts[i] = BuildExpr(ctx, s, diags)
		isLast := i == len(n.Statements)-1
		if stmts[i].Kind == element.ExprReturn {
			exitTypes = append(exitTypes, stmts[i].Type)
		} else if isLast {
			exitTypes = append(exitTypes, stmts[i].Type)
		}
	}
	return element.CodeBlockExpr(typesystem.CommonTargetTypeForList(exitTypes), stmts)
}

// buildCallbackConnection implements a `callback-name => { ... }` handler:
// its declared parameters go into scope for the body.
func buildCallbackConnection(ctx *LookupContext, n *syntax.CallbackConnection, diags *diag.Builder) *element.Expression {
	saved := ctx.Arguments
	ctx.Arguments = map[string]*typesystem.Type{}
	for k, v := range saved {
		ctx.Arguments[k] = v
	}
	for _, p := range n.Params {
		ctx.Arguments[p] = typesystem.Invalid
	}
	body := buildCodeBlock(ctx, n.Body, diags)
	ctx.Arguments = saved
	return element.CallbackExpr(n.Params, body)
}

// buildLetStatement implements spec §4.1's "Let statements" rule: prefix
// the declared name with `local_`, record it in the current code block's
// local scope, and reject redeclaration.
func buildLetStatement(ctx *LookupContext, n *syntax.LetStatement, diags *diag.Builder) *element.Expression {
	value := BuildExpr(ctx, n.Value, diags)
	localName := "local_" + n.Name
	if !ctx.DeclareLocal(localName, value.Type) {
		diags.Errorf(n.Location(), diag.SemanticConstraint, "local variable %q is already declared in this scope", n.Name)
		return element.Invalid()
	}
	return element.StoreLocal(localName, value)
}

func buildReturnStatement(ctx *LookupContext, n *syntax.ReturnStatement, diags *diag.Builder) *element.Expression {
	if n.Value == nil {
		return element.Return(nil)
	}
	return element.Return(BuildExpr(ctx, n.Value, diags))
}

