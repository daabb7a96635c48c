// Package openai implements the ai interfaces against OpenAI-compatible
// embedding APIs via langchaingo. Works with any service speaking the
// OpenAI embeddings protocol: OpenAI itself, Ollama, LocalAI, vLLM.
package openai
