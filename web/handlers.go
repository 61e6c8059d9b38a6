// Package web exposes the analysis pipeline over HTTP.
package web

import (
	"context"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/pkg/common/utils"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"

	"github.com/camel-lab/camelgo/charmap"
	"github.com/camel-lab/camelgo/disambig"
	"github.com/camel-lab/camelgo/morphology"
	"github.com/camel-lab/camelgo/tokenizer"
	"github.com/camel-lab/camelgo/transliterate"
)

// MorphController serves analysis, disambiguation, tokenization and
// transliteration requests.
type MorphController struct {
	analyzer      *morphology.Analyzer
	disambiguator disambig.Disambiguator
}

func NewMorphController(analyzer *morphology.Analyzer, d disambig.Disambiguator) *MorphController {
	return &MorphController{analyzer: analyzer, disambiguator: d}
}

func (c *MorphController) Analyze(_ context.Context, ctx *frame.Context) {
	var req AnalyzeRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(req.Words) == 0 {
		Failed(ctx, consts.StatusBadRequest, "no words provided", nil)
		return
	}
	Success(ctx, consts.StatusOK, c.analyzer.AnalyzeWords(req.Words))
}

// Diac returns the diacritized form of each word, picked from its top
// disambiguated analysis. Words without analyses pass through unchanged.
func (c *MorphController) Diac(_ context.Context, ctx *frame.Context) {
	words, ok := c.bindWords(ctx)
	if !ok {
		return
	}

	disambiguated := c.disambiguator.Disambiguate(words, 1)
	diacs := make([]string, len(disambiguated))
	for i, dw := range disambiguated {
		diacs[i] = topFeat(dw, "diac", dw.Word)
	}
	Success(ctx, consts.StatusOK, utils.H{"words": words, "diacs": diacs})
}

// Lemma returns the lemma of each word from its top disambiguated analysis.
func (c *MorphController) Lemma(_ context.Context, ctx *frame.Context) {
	words, ok := c.bindWords(ctx)
	if !ok {
		return
	}

	disambiguated := c.disambiguator.Disambiguate(words, 1)
	lemmas := make([]string, len(disambiguated))
	for i, dw := range disambiguated {
		lemmas[i] = topFeat(dw, "lex", dw.Word)
	}
	Success(ctx, consts.StatusOK, utils.H{"words": words, "lemmas": lemmas})
}

func (c *MorphController) Tokenize(_ context.Context, ctx *frame.Context) {
	var req TokenizeRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(req.Words) == 0 {
		Failed(ctx, consts.StatusBadRequest, "no words provided", nil)
		return
	}

	tok, err := tokenizer.NewMorphologicalTokenizer(c.disambiguator, req.Scheme, req.Split)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(),
			utils.H{"schemes": tokenizer.MorphSchemes()})
		return
	}
	Success(ctx, consts.StatusOK, utils.H{"tokens": tok.Tokenize(req.Words)})
}

func (c *MorphController) Transliterate(_ context.Context, ctx *frame.Context) {
	var req TranslitRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Scheme == "" {
		Failed(ctx, consts.StatusBadRequest, "no scheme provided",
			utils.H{"schemes": charmap.BuiltinNames()})
		return
	}

	translit, err := transliterate.NewBuiltin(req.Scheme, req.Marker)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(),
			utils.H{"schemes": charmap.BuiltinNames()})
		return
	}
	Success(ctx, consts.StatusOK,
		utils.H{"text": translit.Transliterate(req.Text, req.Strip, req.Ignore)})
}

func (c *MorphController) Schemes(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, utils.H{
		"translit": charmap.BuiltinNames(),
		"tokenize": tokenizer.MorphSchemes(),
	})
}

func (c *MorphController) bindWords(ctx *frame.Context) ([]string, bool) {
	var req SentenceRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return nil, false
	}
	if len(req.Words) == 0 {
		Failed(ctx, consts.StatusBadRequest, "no words provided", nil)
		return nil, false
	}
	return req.Words, true
}

func topFeat(dw disambig.DisambiguatedWord, feat, fallback string) string {
	if len(dw.Analyses) == 0 {
		return fallback
	}
	if val, ok := dw.Analyses[0].Analysis[feat]; ok && val != "" {
		return val
	}
	return fallback
}

// Routes registers the analysis endpoints on a router group.
func (c *MorphController) Routes(r route.IRouter) route.IRouter {
	r.POST("/analyze", c.Analyze)
	r.POST("/diac", c.Diac)
	r.POST("/lemma", c.Lemma)
	r.POST("/tokenize", c.Tokenize)
	r.POST("/translit", c.Transliterate)
	r.GET("/schemes", c.Schemes)
	return r
}

func requestID() frame.HandlerFunc {
	return func(c context.Context, ctx *frame.Context) {
		ctx.Response.Header.Set("X-Request-ID", xid.New().String())
		ctx.Next(c)
	}
}

// StartServer serves the controller's routes on addr until the process is
// stopped.
func StartServer(addr string, controller *MorphController, routePrefix ...string) {
	prefix := "/"
	if len(routePrefix) > 0 {
		prefix = routePrefix[0]
	}
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)
	srv.Use(cors.Default())
	srv.Use(requestID())
	controller.Routes(srv.Group(prefix))

	log.Info().Str("addr", addr).Msg("starting server")
	srv.Spin()
}
