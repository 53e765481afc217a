package report

// Schema is the JSON Schema (Draft 2020-12) for the JSON report
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/jflowers/scrutiny/quality-report.schema.json",
  "title": "Scrutiny Quality Report",
  "description": "Output schema for scrutiny analyze --format=json",
  "type": "object",
  "required": [
    "version", "quality_score", "file_name", "size", "complexity",
    "test", "duplication", "code_smells", "conventions", "framework",
    "types", "syntax", "design_patterns"
  ],
  "properties": {
    "version": { "type": "string", "description": "Schema version (semver)" },
    "quality_score": {
      "type": "integer", "minimum": 0, "maximum": 100,
      "description": "Composite quality score"
    },
    "file_name": { "type": "string" },
    "size": { "$ref": "#/$defs/Size" },
    "complexity": { "$ref": "#/$defs/Complexity" },
    "test": { "$ref": "#/$defs/Test" },
    "duplication": { "$ref": "#/$defs/Duplication" },
    "code_smells": { "$ref": "#/$defs/CodeSmells" },
    "conventions": { "$ref": "#/$defs/Conventions" },
    "framework": { "$ref": "#/$defs/Framework" },
    "types": { "$ref": "#/$defs/Types" },
    "syntax": { "$ref": "#/$defs/Syntax" },
    "design_patterns": { "$ref": "#/$defs/DesignPatterns" }
  },
  "$defs": {
    "StringList": {
      "oneOf": [
        { "type": "array", "items": { "type": "string" } },
        { "type": "null" }
      ]
    },
    "Size": {
      "type": "object",
      "required": ["total_lines", "logical_loc", "blank_lines", "comment_lines", "comment_ratio"],
      "properties": {
        "total_lines": { "type": "integer", "minimum": 0 },
        "logical_loc": { "type": "integer", "minimum": 0 },
        "blank_lines": { "type": "integer", "minimum": 0 },
        "comment_lines": { "type": "integer", "minimum": 0 },
        "comment_ratio": { "type": "number", "minimum": 0, "maximum": 100 }
      }
    },
    "Complexity": {
      "type": "object",
      "required": ["cyclomatic_complexity", "avg_cyclomatic", "max_cyclomatic",
                   "cognitive_complexity", "avg_cognitive", "max_cognitive",
                   "maintainability_index"],
      "properties": {
        "cyclomatic_complexity": {
          "type": "object", "additionalProperties": { "type": "integer" }
        },
        "avg_cyclomatic": { "type": "number", "minimum": 0 },
        "max_cyclomatic": { "type": "integer", "minimum": 0 },
        "cognitive_complexity": {
          "type": "object", "additionalProperties": { "type": "integer" }
        },
        "avg_cognitive": { "type": "number", "minimum": 0 },
        "max_cognitive": { "type": "integer", "minimum": 0 },
        "maintainability_index": { "type": "number", "minimum": 0, "maximum": 100 }
      }
    },
    "Test": {
      "type": "object",
      "required": ["test_method_count", "nested_class_count", "assert_count",
                   "asserts_per_test", "long_tests", "long_test_count",
                   "aaa_organized_count", "aaa_percentage",
                   "tests_with_exception_handling", "exception_handling_percentage",
                   "exception_handling_needed"],
      "properties": {
        "test_method_count": { "type": "integer", "minimum": 0 },
        "nested_class_count": { "type": "integer", "minimum": 0 },
        "assert_count": { "type": "integer", "minimum": 0 },
        "asserts_per_test": { "type": "number", "minimum": 0 },
        "long_tests": { "$ref": "#/$defs/StringList" },
        "long_test_count": { "type": "integer", "minimum": 0 },
        "aaa_organized_count": { "type": "integer", "minimum": 0 },
        "aaa_percentage": { "type": "number", "minimum": 0, "maximum": 100 },
        "tests_with_exception_handling": { "type": "integer", "minimum": 0 },
        "exception_handling_percentage": { "type": "number", "minimum": 0, "maximum": 100 },
        "exception_handling_needed": { "type": "boolean" }
      }
    },
    "Duplication": {
      "type": "object",
      "required": ["duplicate_segments", "duplicate_lines", "duplicate_percentage", "duplicated_blocks"],
      "properties": {
        "duplicate_segments": { "type": "integer", "minimum": 0 },
        "duplicate_lines": { "type": "integer", "minimum": 0 },
        "duplicate_percentage": { "type": "number", "minimum": 0, "maximum": 100 },
        "duplicated_blocks": { "$ref": "#/$defs/StringList" }
      }
    },
    "Smell": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["Long Method", "Too Many Parameters", "Magic Number",
                   "Deep Nesting", "Wildcard Import"]
        },
        "location": { "type": "string" },
        "detail": { "type": "string" },
        "count": { "type": "integer" }
      }
    },
    "CodeSmells": {
      "type": "object",
      "required": ["code_smell_count", "code_smells", "todo_fixme_count",
                   "wildcard_imports", "dead_code_items", "dead_code_percentage"],
      "properties": {
        "code_smell_count": { "type": "integer", "minimum": 0 },
        "code_smells": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/Smell" } },
            { "type": "null" }
          ]
        },
        "todo_fixme_count": { "type": "integer", "minimum": 0 },
        "wildcard_imports": { "type": "integer", "minimum": 0 },
        "dead_code_items": { "$ref": "#/$defs/StringList" },
        "dead_code_percentage": { "type": "number", "minimum": 0 }
      }
    },
    "ConventionViolation": {
      "type": "object",
      "required": ["rule"],
      "properties": {
        "rule": { "type": "string" },
        "detail": { "type": "string" },
        "line": { "type": "integer" },
        "length": { "type": "integer" }
      }
    },
    "Conventions": {
      "type": "object",
      "required": ["follows_conventions", "convention_violations", "violation_count"],
      "properties": {
        "follows_conventions": { "type": "boolean" },
        "convention_violations": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/ConventionViolation" } },
            { "type": "null" }
          ]
        },
        "violation_count": { "type": "integer", "minimum": 0 }
      }
    },
    "Framework": {
      "type": "object",
      "required": ["framework_keyword_violations", "invalid_assertions",
                   "non_framework_methods", "valid_framework_assertions"],
      "properties": {
        "framework_keyword_violations": { "type": "integer", "minimum": 0 },
        "invalid_assertions": { "$ref": "#/$defs/StringList" },
        "non_framework_methods": { "$ref": "#/$defs/StringList" },
        "valid_framework_assertions": { "type": "boolean" }
      }
    },
    "Types": {
      "type": "object",
      "required": ["type_errors", "undefined_variables",
                   "type_annotation_errors", "generic_type_misuses"],
      "properties": {
        "type_errors": { "type": "integer", "minimum": 0 },
        "undefined_variables": { "$ref": "#/$defs/StringList" },
        "type_annotation_errors": { "type": "integer", "minimum": 0 },
        "generic_type_misuses": { "$ref": "#/$defs/StringList" }
      }
    },
    "SyntaxIssue": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["Unbalanced braces", "Unbalanced parentheses", "Possible missing semicolon"]
        },
        "line": { "type": "integer" },
        "open": { "type": "integer" },
        "close": { "type": "integer" }
      }
    },
    "LintIssue": {
      "type": "object",
      "required": ["type", "line"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["Trailing whitespace", "Multiple consecutive empty lines",
                   "Missing space after keyword"]
        },
        "line": { "type": "integer" }
      }
    },
    "Syntax": {
      "type": "object",
      "required": ["syntax_errors", "syntax_error_details",
                   "linting_violations", "linting_details"],
      "properties": {
        "syntax_errors": { "type": "integer", "minimum": 0 },
        "syntax_error_details": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/SyntaxIssue" } },
            { "type": "null" }
          ]
        },
        "linting_violations": { "type": "integer", "minimum": 0 },
        "linting_details": {
          "oneOf": [
            { "type": "array", "items": { "$ref": "#/$defs/LintIssue" } },
            { "type": "null" }
          ]
        }
      }
    },
    "DesignPatterns": {
      "type": "object",
      "required": ["adheres_to_patterns", "patterns_detected", "pattern_violations"],
      "properties": {
        "adheres_to_patterns": { "type": "boolean" },
        "patterns_detected": { "$ref": "#/$defs/StringList" },
        "pattern_violations": { "$ref": "#/$defs/StringList" }
      }
    }
  }
}`
