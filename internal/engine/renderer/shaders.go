package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat3 uNormalMatrix;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vColor;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = normalize(uNormalMatrix * aNormal);
    vColor = aColor;
    gl_Position = uViewProj * world;
}
`

const fragmentShader = `
#version 410 core

#define MAX_POINT_LIGHTS 8

in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vColor;

uniform vec3 uBaseColor;
uniform vec3 uEmissive;
uniform bool uUnlit;
uniform bool uVertexColors;

uniform vec3 uAmbient;
uniform vec3 uSunDir;
uniform vec3 uSunColor;

uniform int uPointCount;
uniform vec3 uPointPositions[MAX_POINT_LIGHTS];
uniform vec3 uPointColors[MAX_POINT_LIGHTS];
uniform float uPointRanges[MAX_POINT_LIGHTS];

out vec4 FragColor;

void main() {
    vec3 albedo = uBaseColor;
    if (uVertexColors) {
        albedo *= vColor;
    }
    if (uUnlit) {
        FragColor = vec4(albedo, 1.0);
        return;
    }

    vec3 n = normalize(vNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }

    vec3 light = uAmbient + uSunColor * max(dot(n, normalize(uSunDir)), 0.0);

    for (int i = 0; i < uPointCount; i++) {
        vec3 toLight = uPointPositions[i] - vWorldPos;
        float dist = length(toLight);
        float atten = 1.0;
        if (uPointRanges[i] > 0.0) {
            atten = clamp(1.0 - dist / uPointRanges[i], 0.0, 1.0);
            atten *= atten;
        }
        light += uPointColors[i] * atten * max(dot(n, toLight / max(dist, 1e-4)), 0.0);
    }

    FragColor = vec4(albedo * light + uEmissive, 1.0);
}
`
